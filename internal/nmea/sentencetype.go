package nmea

// SentenceType identifies an NMEA 0183 sentence by its three-letter
// message ID. The set below covers the approved sentences plus a few
// common proprietary ones (RMZ is Garmin's PGRMZ).
type SentenceType uint8

const (
	TypeUnknown SentenceType = iota
	TypeAAM
	TypeABK
	TypeACA
	TypeACK
	TypeACS
	TypeAIR
	TypeALM
	TypeALR
	TypeAPA
	TypeAPB
	TypeASD
	TypeBEC
	TypeBOD
	TypeBWC
	TypeBWR
	TypeBWW
	TypeCUR
	TypeDBK
	TypeDBS
	TypeDBT
	TypeDCN
	TypeDPT
	TypeDSC
	TypeDSE
	TypeDSI
	TypeDSR
	TypeDTM
	TypeFSI
	TypeGBS
	TypeGGA
	TypeGLC
	TypeGLL
	TypeGMP
	TypeGNS
	TypeGRS
	TypeGSA
	TypeGST
	TypeGSV
	TypeGTD
	TypeGXA
	TypeHDG
	TypeHDM
	TypeHDT
	TypeHMR
	TypeHMS
	TypeHSC
	TypeHTC
	TypeHTD
	TypeLCD
	TypeLRF
	TypeLRI
	TypeLR1
	TypeLR2
	TypeLR3
	TypeMDA
	TypeMLA
	TypeMSK
	TypeMSS
	TypeMWD
	TypeMTW
	TypeMWV
	TypeOLN
	TypeOSD
	TypeROO
	TypeRMA
	TypeRMB
	TypeRMC
	TypeRMZ
	TypeROT
	TypeRPM
	TypeRSA
	TypeRSD
	TypeRTE
	TypeSFI
	TypeSSD
	TypeSTN
	TypeTLB
	TypeTLL
	TypeTRF
	TypeTTM
	TypeTUT
	TypeTXT
	TypeVBW
	TypeVDM
	TypeVDO
	TypeVDR
	TypeVHW
	TypeVLW
	TypeVPW
	TypeVSD
	TypeVTG
	TypeVWR
	TypeWCV
	TypeWNC
	TypeWPL
	TypeXDR
	TypeXTE
	TypeXTR
	TypeZDA
	TypeZDL
	TypeZFO
	TypeZTG

	numSentenceTypes
)

var sentenceTypeNames = [numSentenceTypes]string{
	TypeUnknown: "???",
	TypeAAM:     "AAM",
	TypeABK:     "ABK",
	TypeACA:     "ACA",
	TypeACK:     "ACK",
	TypeACS:     "ACS",
	TypeAIR:     "AIR",
	TypeALM:     "ALM",
	TypeALR:     "ALR",
	TypeAPA:     "APA",
	TypeAPB:     "APB",
	TypeASD:     "ASD",
	TypeBEC:     "BEC",
	TypeBOD:     "BOD",
	TypeBWC:     "BWC",
	TypeBWR:     "BWR",
	TypeBWW:     "BWW",
	TypeCUR:     "CUR",
	TypeDBK:     "DBK",
	TypeDBS:     "DBS",
	TypeDBT:     "DBT",
	TypeDCN:     "DCN",
	TypeDPT:     "DPT",
	TypeDSC:     "DSC",
	TypeDSE:     "DSE",
	TypeDSI:     "DSI",
	TypeDSR:     "DSR",
	TypeDTM:     "DTM",
	TypeFSI:     "FSI",
	TypeGBS:     "GBS",
	TypeGGA:     "GGA",
	TypeGLC:     "GLC",
	TypeGLL:     "GLL",
	TypeGMP:     "GMP",
	TypeGNS:     "GNS",
	TypeGRS:     "GRS",
	TypeGSA:     "GSA",
	TypeGST:     "GST",
	TypeGSV:     "GSV",
	TypeGTD:     "GTD",
	TypeGXA:     "GXA",
	TypeHDG:     "HDG",
	TypeHDM:     "HDM",
	TypeHDT:     "HDT",
	TypeHMR:     "HMR",
	TypeHMS:     "HMS",
	TypeHSC:     "HSC",
	TypeHTC:     "HTC",
	TypeHTD:     "HTD",
	TypeLCD:     "LCD",
	TypeLRF:     "LRF",
	TypeLRI:     "LRI",
	TypeLR1:     "LR1",
	TypeLR2:     "LR2",
	TypeLR3:     "LR3",
	TypeMDA:     "MDA",
	TypeMLA:     "MLA",
	TypeMSK:     "MSK",
	TypeMSS:     "MSS",
	TypeMWD:     "MWD",
	TypeMTW:     "MTW",
	TypeMWV:     "MWV",
	TypeOLN:     "OLN",
	TypeOSD:     "OSD",
	TypeROO:     "ROO",
	TypeRMA:     "RMA",
	TypeRMB:     "RMB",
	TypeRMC:     "RMC",
	TypeRMZ:     "RMZ",
	TypeROT:     "ROT",
	TypeRPM:     "RPM",
	TypeRSA:     "RSA",
	TypeRSD:     "RSD",
	TypeRTE:     "RTE",
	TypeSFI:     "SFI",
	TypeSSD:     "SSD",
	TypeSTN:     "STN",
	TypeTLB:     "TLB",
	TypeTLL:     "TLL",
	TypeTRF:     "TRF",
	TypeTTM:     "TTM",
	TypeTUT:     "TUT",
	TypeTXT:     "TXT",
	TypeVBW:     "VBW",
	TypeVDM:     "VDM",
	TypeVDO:     "VDO",
	TypeVDR:     "VDR",
	TypeVHW:     "VHW",
	TypeVLW:     "VLW",
	TypeVPW:     "VPW",
	TypeVSD:     "VSD",
	TypeVTG:     "VTG",
	TypeVWR:     "VWR",
	TypeWCV:     "WCV",
	TypeWNC:     "WNC",
	TypeWPL:     "WPL",
	TypeXDR:     "XDR",
	TypeXTE:     "XTE",
	TypeXTR:     "XTR",
	TypeZDA:     "ZDA",
	TypeZDL:     "ZDL",
	TypeZFO:     "ZFO",
	TypeZTG:     "ZTG",
}

var sentenceTypeByName = func() map[string]SentenceType {
	m := make(map[string]SentenceType, numSentenceTypes)
	for t := TypeAAM; t < numSentenceTypes; t++ {
		m[sentenceTypeNames[t]] = t
	}
	return m
}()

func (t SentenceType) String() string {
	if t >= numSentenceTypes {
		return "???"
	}
	return sentenceTypeNames[t]
}

// SentenceTypeOf resolves a three-letter message ID. Unrecognized IDs
// return TypeUnknown.
func SentenceTypeOf(id string) SentenceType {
	return sentenceTypeByName[id]
}

// SentenceSet is a set of sentence types packed into two 64-bit words.
type SentenceSet struct {
	lo, hi uint64
}

// NewSentenceSet builds a set from the given types.
func NewSentenceSet(types ...SentenceType) SentenceSet {
	var s SentenceSet
	for _, t := range types {
		s.Insert(t)
	}
	return s
}

func (s *SentenceSet) Insert(t SentenceType) {
	if t < 64 {
		s.lo |= 1 << t
	} else {
		s.hi |= 1 << (t - 64)
	}
}

func (s SentenceSet) Contains(t SentenceType) bool {
	if t < 64 {
		return s.lo&(1<<t) != 0
	}
	return s.hi&(1<<(t-64)) != 0
}

// SubsetOf reports whether every type in s is also in other.
func (s SentenceSet) SubsetOf(other SentenceSet) bool {
	return s.lo&^other.lo == 0 && s.hi&^other.hi == 0
}

func (s SentenceSet) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Types returns the members of the set in enumeration order.
func (s SentenceSet) Types() []SentenceType {
	var out []SentenceType
	for t := TypeAAM; t < numSentenceTypes; t++ {
		if s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
