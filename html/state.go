package html

// state is the tokenizer state while walking a range.
type state uint8

const (
	// stateText accumulates plain text.
	stateText state = iota
	// stateDoctype skips a "<!...>" declaration.
	stateDoctype
	// stateComment accumulates the body of "<!-- -->".
	stateComment
	// stateTagName accumulates the tag name of an opening tag.
	stateTagName
	// stateTagAtt accumulates an attribute name.
	stateTagAtt
	// stateTagAttValue accumulates an unquoted value or detects a quote.
	stateTagAttValue
	// stateTagAttValueQuoted consumes a quoted value verbatim.
	stateTagAttValueQuoted
	// stateTagBody parses the children of an opened tag.
	stateTagBody
	// stateTagClose skips the closing tag.
	stateTagClose
)

func (s state) String() string {
	switch s {
	case stateText:
		return "TEXT"
	case stateDoctype:
		return "DOCTYPE"
	case stateComment:
		return "COMMENT"
	case stateTagName:
		return "TAG_NAME"
	case stateTagAtt:
		return "TAG_ATT"
	case stateTagAttValue:
		return "TAG_ATT_VALUE"
	case stateTagAttValueQuoted:
		return "TAG_ATT_VALUE_QUOTED"
	case stateTagBody:
		return "TAG_BODY"
	case stateTagClose:
		return "TAG_CLOSE"
	default:
		return "UNKNOWN"
	}
}
