package buffer

// Point addresses an edit target: X is a byte offset within a line, Y a
// line index.
type Point struct {
	X, Y int
}

// EditKind discriminates the closed set of Edit variants. Undo grouping
// compares kinds directly.
type EditKind int

const (
	EditInsert EditKind = iota
	EditOverwrite
	EditDelete
	EditCut
	EditPaste
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditOverwrite:
		return "overwrite"
	case EditDelete:
		return "delete"
	case EditCut:
		return "cut"
	case EditPaste:
		return "paste"
	case EditReplace:
		return "replace"
	}
	return "unknown"
}

// Edit is one buffer mutation. Only the fields relevant to its Kind are
// set; Buffer.Execute applies it and produces its structural inverse.
type Edit struct {
	Kind   EditKind
	Ch     rune   // Insert, Overwrite
	Pos    Point  // all kinds
	End    Point  // Cut: exclusive right bound
	Text   string // Paste, Replace
	Length int    // Replace: byte length of the replaced range
}

func Insert(ch rune, pt Point) Edit {
	return Edit{Kind: EditInsert, Ch: ch, Pos: pt}
}

func Overwrite(ch rune, pt Point) Edit {
	return Edit{Kind: EditOverwrite, Ch: ch, Pos: pt}
}

func Delete(pt Point) Edit {
	return Edit{Kind: EditDelete, Pos: pt}
}

func Cut(l, r Point) Edit {
	return Edit{Kind: EditCut, Pos: l, End: r}
}

func Paste(pt Point, text string) Edit {
	return Edit{Kind: EditPaste, Pos: pt, Text: text}
}

func Replace(pt Point, length int, text string) Edit {
	return Edit{Kind: EditReplace, Pos: pt, Length: length, Text: text}
}
