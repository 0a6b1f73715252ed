package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolver picks the image source for a reference. Blob-store URLs go to
// the Azure source when one is configured; everything else goes over HTTP.
type Resolver struct {
	http  ImageSource
	azure ImageSource
}

func NewResolver(httpSource, azureSource ImageSource) *Resolver {
	return &Resolver{http: httpSource, azure: azureSource}
}

func (r *Resolver) Resolve(ref string) (ImageSource, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid image reference: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported reference scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("image reference must have a host")
	}

	if strings.HasSuffix(parsed.Host, ".blob.core.windows.net") && r.azure != nil {
		return r.azure, nil
	}
	return r.http, nil
}
