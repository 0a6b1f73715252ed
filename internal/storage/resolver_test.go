package storage

import (
	"context"
	"testing"
)

type stubSource struct {
	name string
}

func (s *stubSource) FetchBytes(ctx context.Context, ref string) ([]byte, error) {
	return nil, nil
}

func TestResolver_Resolve(t *testing.T) {
	httpSrc := &stubSource{name: "http"}
	azureSrc := &stubSource{name: "azure"}
	resolver := NewResolver(httpSrc, azureSrc)

	tests := []struct {
		name    string
		ref     string
		want    *stubSource
		wantErr bool
	}{
		{
			name: "plain https URL uses HTTP source",
			ref:  "https://example.com/leaf.jpg",
			want: httpSrc,
		},
		{
			name: "blob store host uses Azure source",
			ref:  "https://farmphotos.blob.core.windows.net/uploads?blob=leaf.jpg",
			want: azureSrc,
		},
		{
			name:    "file scheme rejected",
			ref:     "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "missing host rejected",
			ref:     "https:///leaf.jpg",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := resolver.Resolve(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.ref, err)
			}
			if src != tt.want {
				t.Errorf("Resolve(%q) picked %v, want %v", tt.ref, src, tt.want)
			}
		})
	}
}

func TestResolver_NoAzureFallsBackToHTTP(t *testing.T) {
	httpSrc := &stubSource{name: "http"}
	resolver := NewResolver(httpSrc, nil)

	src, err := resolver.Resolve("https://acct.blob.core.windows.net/c?blob=x.png")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src != ImageSource(httpSrc) {
		t.Error("Expected HTTP fallback when Azure source is absent")
	}
}

var _ ImageSource = (*HTTPSource)(nil)
