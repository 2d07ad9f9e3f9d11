package deck

// Card is a single labeled card. Its identity is its label: duplicates are
// allowed and treated as independent cards. The empty string is reserved as
// the "no card" sentinel and never appears as a card.
type Card string

func (c Card) String() string {
	return string(c)
}
