package mock

import "github.com/kiosque/kiosque"

var _ kiosque.CredentialsProvider = (*CredentialsProvider)(nil)

// CredentialsProvider is a mock implementation of
// kiosque.CredentialsProvider.
type CredentialsProvider struct {
	CredentialsFn func(baseURL string) (map[string]string, bool)
}

func (p *CredentialsProvider) Credentials(baseURL string) (map[string]string, bool) {
	return p.CredentialsFn(baseURL)
}

// StaticCredentials returns a provider backed by a fixed map keyed by
// base URL.
func StaticCredentials(sections map[string]map[string]string) *CredentialsProvider {
	return &CredentialsProvider{
		CredentialsFn: func(baseURL string) (map[string]string, bool) {
			creds, ok := sections[baseURL]
			return creds, ok
		},
	}
}
