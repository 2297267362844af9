package dto

// AddressBookEnvelope matches the client wire format: the address book itself
// travels as a JSON string inside the "data" field.
type AddressBookEnvelope struct {
	Data string `json:"data"`
}

type AddressBook struct {
	Tags      []string          `json:"tags"`
	TagColors string            `json:"tag_colors"`
	Peers     []AddressBookPeer `json:"peers"`
}

type AddressBookPeer struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Hostname string   `json:"hostname"`
	Platform string   `json:"platform"`
	Hash     string   `json:"hash,omitempty"`
	Alias    string   `json:"alias,omitempty"`
	Tags     []string `json:"tags"`
}
