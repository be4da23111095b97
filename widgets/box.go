package widgets

// Box frames a calendar. The focused box uses the primary border colour.
type Box struct {
	Content string
	Focused bool
}

func (b Box) Render(st Styles) string {
	style := st.Frame
	if b.Focused {
		style = st.FocusedFrame
	}
	return style.Render(b.Content)
}
