package site

import (
	"context"
	"net/url"

	"github.com/kiosque/kiosque"
)

// mondeDiploAccountURL serves the login form fragment with its signed
// hidden fields.
const mondeDiploAccountURL = "https://www.monde-diplomatique.fr/mon_compte?var_zajax=contenu"

// MondeDiplomatique handles monde-diplomatique.fr. Login POSTs a SPIP form
// whose four signed hidden fields are scraped from the account fragment;
// the monthly issue is downloadable as PDF, named by Content-Disposition.
type MondeDiplomatique struct {
	*Base
}

// NewMondeDiplomatique creates the monde-diplomatique.fr handler.
func NewMondeDiplomatique(s *Session) kiosque.Site {
	return &MondeDiplomatique{Base: NewBase(s, Config{
		Name:     "mondediplomatique",
		BaseURL:  "https://www.monde-diplomatique.fr/",
		Aliases:  []string{"diplomatique", "diplo"},
		LoginURL: "https://www.monde-diplomatique.fr/load_mon_compte",
		Login: FormLogin(func(ctx context.Context, b *Base) (string, url.Values, error) {
			resp, err := b.Client().Get(ctx, mondeDiploAccountURL)
			if err != nil {
				return "", nil, err
			}
			form := url.Values{
				"valider":     {"Valider"},
				"email":       {b.Credentials()["username"]},
				"mot_de_passe": {b.Credentials()["password"]},
				"email_nobot": {""},
			}
			for _, name := range []string{
				"formulaire_action",
				"formulaire_action_args",
				"formulaire_action_sign",
				"_jeton",
			} {
				value, err := hiddenInput(resp.Body, name)
				if err != nil {
					return "", nil, err
				}
				form.Set(name, value)
			}
			return "", form, nil
		}),
		DescriptionMeta: []MetaRule{{Attr: "name", Values: []string{"description"}}},
		Article:         "div.texte",
		StripAttrs:      []string{"h3", "span"},
		Remove:          []string{"figure", "div", "small", "a"},
	})}
}

// LatestIssueURL walks home page → current issue page → PDF download
// button.
func (s *MondeDiplomatique) LatestIssueURL(ctx context.Context) (string, error) {
	resp, err := s.Client().Get(ctx, s.BaseURL())
	if err != nil {
		return "", err
	}
	home, err := parseHTML(resp.Body)
	if err != nil {
		return "", err
	}
	current, ok := home.Find("a#entree-numero").First().Attr("href")
	if !ok {
		return "", kiosque.Errorf(kiosque.EEXTRACTION, "no current issue link on %s", s.BaseURL())
	}

	resp, err = s.Client().Get(ctx, absoluteURL(s.BaseURL(), current))
	if err != nil {
		return "", err
	}
	issue, err := parseHTML(resp.Body)
	if err != nil {
		return "", err
	}
	href, ok := issue.Find("div.format.pdf a.bouton_telecharger").First().Attr("href")
	if !ok {
		return "", kiosque.Errorf(kiosque.EEXTRACTION, "no PDF download button on issue page %s", current)
	}
	return absoluteURL(s.BaseURL(), href), nil
}
