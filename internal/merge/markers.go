package merge

// Marker tokens delimiting the machine-owned regions. Each must sit on its
// own line, indentation aside. Collaborators must not hand-edit them.
const (
	FieldsStart = "// <auto-fields>"
	FieldsEnd   = "// </auto-fields>"

	PropsStart = "// <auto-props>"
	PropsEnd   = "// </auto-props>"

	InitStart = "// <auto-assign>"
	InitEnd   = "// </auto-assign>"
)
