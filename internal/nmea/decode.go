package nmea

// Data is a decoded sentence. Callers type-switch on the concrete
// sentence structs.
type Data interface {
	SentenceType() SentenceType
}

// decoders maps each supported type to its field decoder. Recognized
// types without an entry decode to an UnsupportedTypeError.
var decoders = map[SentenceType]func(Sentence) (Data, error){
	TypeAAM: parseAAM,
	TypeALM: parseALM,
	TypeAPA: parseAPA,
	TypeAPB: parseAPB,
	TypeBOD: parseBOD,
	TypeBWC: parseBWC,
	TypeBWW: parseBWW,
	TypeDBK: parseDBK,
	TypeDBS: parseDBS,
	TypeDPT: parseDPT,
	TypeGBS: parseGBS,
	TypeGGA: parseGGA,
	TypeGLL: parseGLL,
	TypeGNS: parseGNS,
	TypeGSA: parseGSA,
	TypeGST: parseGST,
	TypeGSV: parseGSV,
	TypeHDT: parseHDT,
	TypeMDA: parseMDA,
	TypeMTW: parseMTW,
	TypeMWV: parseMWV,
	TypeRMC: parseRMC,
	TypeRMZ: parseRMZ,
	TypeTTM: parseTTM,
	TypeTXT: parseTXT,
	TypeVHW: parseVHW,
	TypeVTG: parseVTG,
	TypeWNC: parseWNC,
	TypeZDA: parseZDA,
	TypeZFO: parseZFO,
	TypeZTG: parseZTG,
}

// Supported is the set of sentence types Decode can fully decode.
var Supported = func() SentenceSet {
	var s SentenceSet
	for t := range decoders {
		s.Insert(t)
	}
	return s
}()

// Decode validates the envelope of one sentence and decodes its
// fields. Unknown message IDs and recognized-but-undecodable types
// yield distinct errors so callers can tell misbehaving devices from
// missing features.
func Decode(line string) (Data, error) {
	s, err := ParseSentence(line)
	if err != nil {
		return nil, err
	}
	return DecodeSentence(s)
}

// DecodeSentence decodes the fields of an already-parsed envelope.
func DecodeSentence(s Sentence) (Data, error) {
	if s.Type == TypeUnknown {
		return nil, &UnknownTypeError{ID: s.TypeID}
	}
	dec, ok := decoders[s.Type]
	if !ok {
		return nil, &UnsupportedTypeError{Type: s.Type}
	}
	return dec(s)
}

// expect guards a per-type decoder against envelopes of another type.
func expect(s Sentence, want SentenceType) error {
	if s.Type != want {
		return &HeaderError{Expected: want, Found: s.Type}
	}
	return nil
}
