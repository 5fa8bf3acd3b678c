package domain

// ClientRecord holds the company data returned by a successful registry
// lookup. It is optional on the form: a proposal can be generated without
// one, and a later successful lookup replaces it wholesale.
type ClientRecord struct {
	CNPJ       string // masked form, XX.XXX.XXX/XXXX-XX
	LegalName  string
	TradeName  string
	Email      string
	Phone      string
	Street     string
	Number     string
	District   string
	City       string
	State      string
	PostalCode string
}

// DisplayName returns the name to print on the proposal, preferring the
// trade name.
func (c *ClientRecord) DisplayName() string {
	if c.TradeName != "" {
		return c.TradeName
	}
	return c.LegalName
}
