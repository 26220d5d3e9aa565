package nmea

// TXT: Text Transmission
// Fields:
//
//	1: total number of sentences in the message
//	2: index of this sentence (1-based)
//	3: text identifier
//	4: text
type TXT struct {
	Count  int
	Seq    int
	TextID int
	Text   string
}

func (TXT) SentenceType() SentenceType { return TypeTXT }

func parseTXT(s Sentence) (Data, error) {
	if err := expect(s, TypeTXT); err != nil {
		return nil, err
	}
	r := newFieldReader(s)
	var d TXT
	d.Count = r.uintIn("count", 1, 99)
	d.Seq = r.uintIn("seq", 1, 99)
	d.TextID = r.uintIn("textID", 0, 99)
	d.Text = r.text("text")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
