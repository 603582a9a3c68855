package scene

// Well-known capability type names. The host may attach further types; the
// generator only needs these for auto-include scanning and the KindAuto
// priority lists.
const (
	TypeButton     = "Button"
	TypeToggle     = "Toggle"
	TypeSlider     = "Slider"
	TypeInputField = "InputField"
	TypeDropdown   = "Dropdown"
	TypeText       = "Text"
	TypeImage      = "Image"

	// TypeContainer is the implicit layout handle every node owns.
	TypeContainer = "Container"

	// TypeNode is the pseudo-type of a bare node reference binding.
	TypeNode = "Node"
)

// InteractivePriority lists interactive control types in KindAuto lookup
// order. The first type present on a node wins.
var InteractivePriority = []string{
	TypeButton,
	TypeToggle,
	TypeSlider,
	TypeInputField,
	TypeDropdown,
}

// DisplayPriority lists display types in KindAuto lookup order, consulted
// only when no interactive type is present.
var DisplayPriority = []string{
	TypeText,
	TypeImage,
}

// AutoIncludeBase is the always-scanned auto-include set.
var AutoIncludeBase = []string{
	TypeButton,
	TypeText,
	TypeImage,
}

// AutoIncludeExtended is the optional extra auto-include set.
var AutoIncludeExtended = []string{
	TypeToggle,
	TypeSlider,
	TypeInputField,
	TypeDropdown,
}
