package segmenter

// Stopword reports whether w is a common English word excluded from keyword
// and key-term selection.
func Stopword(w string) bool {
	return stopwords[w]
}

// stopwords are common English words excluded from keyword selection.
var stopwords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"for": true, "you": true, "your": true, "are": true, "was": true,
	"were": true, "have": true, "has": true, "had": true, "but": true,
	"not": true, "all": true, "can": true, "will": true, "would": true,
	"could": true, "should": true, "just": true, "like": true, "they": true,
	"them": true, "their": true, "there": true, "then": true, "than": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "how": true, "why": true, "from": true, "into": true,
	"about": true, "because": true, "been": true, "being": true, "also": true,
	"some": true, "more": true, "most": true, "other": true, "very": true,
	"really": true, "going": true, "gonna": true, "want": true, "know": true,
	"think": true, "thing": true, "things": true, "here": true, "well": true,
	"okay": true, "yeah": true, "right": true, "actually": true, "basically": true,
	"over": true, "again": true, "only": true, "even": true, "much": true,
	"these": true, "those": true, "does": true, "doing": true, "don't": true,
	"it's": true, "that's": true, "we're": true, "you're": true, "i'm": true,
}
