package render

// Variant is the visual state of a rendered task. There are exactly two.
type Variant string

const (
	Validated   Variant = "validated"
	Unvalidated Variant = "unvalidated"
)

// VariantFor maps a completion flag to its variant
func VariantFor(completed bool) Variant {
	if completed {
		return Validated
	}
	return Unvalidated
}

// Style is the inline styling applied for one variant
type Style struct {
	ItemShadow      string
	ItemBorder      string
	CheckMark       string
	CheckBackground string
	CheckShadow     string
	CheckBorder     string
	CheckTextShadow string
}

// Theme holds the style of each variant
type Theme struct {
	Validated   Style
	Unvalidated Style
}

// DefaultTheme is the green and red glow of the task page
var DefaultTheme = Theme{
	Validated: Style{
		ItemShadow:      "0px 0px 10px rgb(0, 255, 13)",
		ItemBorder:      "2px solid rgb(0, 255, 13)",
		CheckMark:       "✓",
		CheckBackground: "rgb(135, 255, 133)",
		CheckShadow:     "0px 0px 10px rgb(0, 255, 13)",
		CheckBorder:     "2px solid rgb(0, 255, 13)",
		CheckTextShadow: "0 0 5px rgb(0, 255, 13)",
	},
	Unvalidated: Style{
		ItemShadow:      "0px 0px 10px rgb(255, 0, 0)",
		ItemBorder:      "2px solid rgb(255, 0, 0)",
		CheckMark:       " ",
		CheckBackground: "rgb(240, 77, 77)",
		CheckShadow:     "0px 0px 10px rgb(255, 0, 0)",
		CheckBorder:     "2px solid rgb(255, 0, 0)",
		CheckTextShadow: "none",
	},
}

// For returns the style of v
func (t Theme) For(v Variant) Style {
	if v == Validated {
		return t.Validated
	}
	return t.Unvalidated
}
