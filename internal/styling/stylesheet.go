package styling

// Stylesheet represents all styles used for rendering the keyboard.
type Stylesheet struct {
	Background DrawStyling

	KeyCap        DrawStyling
	KeyCapTouched DrawStyling
	KeyCapPointer DrawStyling
	KeyCapCommand DrawStyling

	LayerIndicator DrawStyling
	ModIndicator   DrawStyling
	Status         DrawStyling
	Trigger        DrawStyling
}

// DefaultStylesheet returns the stylesheet for the given background
// preference.
func DefaultStylesheet(dark bool) *Stylesheet {
	if dark {
		keyCap := StyleFromHex("#f0f0f0", "#303030")
		return &Stylesheet{
			Background:     StyleFromHex("#808080", "#101010"),
			KeyCap:         keyCap,
			KeyCapTouched:  keyCap.DefaultEmphasized().Bolded(),
			KeyCapPointer:  StyleFromHex("#ccebff", "#20303a"),
			KeyCapCommand:  StyleFromHex("#c2edab", "#2a3a20"),
			LayerIndicator: StyleFromHex("#fff0cc", "#101010").Bolded(),
			ModIndicator:   StyleFromHex("#ffccf7", "#101010").Bolded(),
			Status:         StyleFromHex("#c0c0c0", "#101010"),
			Trigger:        StyleFromHex("#101010", "#fff0cc").Bolded(),
		}
	}
	keyCap := StyleFromHex("#202020", "#e8e8e8")
	return &Stylesheet{
		Background:     StyleFromHex("#606060", "#ffffff"),
		KeyCap:         keyCap,
		KeyCapTouched:  keyCap.DefaultEmphasized().Bolded(),
		KeyCapPointer:  StyleFromHex("#0067ab", "#ccebff"),
		KeyCapCommand:  StyleFromHex("#3a751a", "#c2edab"),
		LayerIndicator: StyleFromHex("#734700", "#ffffff").Bolded(),
		ModIndicator:   StyleFromHex("#a3008b", "#ffffff").Bolded(),
		Status:         StyleFromHex("#404040", "#ffffff"),
		Trigger:        StyleFromHex("#ffffff", "#734700").Bolded(),
	}
}
