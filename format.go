package smsc

import "net/url"

// Format selects the kind of message the gateway sends.
type Format int

// Message formats.
const (
	FormatSMS    Format = 0  // plain SMS
	FormatFlash  Format = 1  // flash SMS
	FormatPush   Format = 2  // WAP-push
	FormatHLR    Format = 3  // HLR request
	FormatBin    Format = 4  // binary SMS
	FormatBinHex Format = 5  // binary SMS, hex-encoded
	FormatPing   Format = 6  // ping SMS
	FormatMMS    Format = 7  // MMS
	FormatMail   Format = 8  // e-mail
	FormatCall   Format = 9  // voice call
	FormatViber  Format = 10 // Viber message
	FormatSocial Format = 11 // social network message
)

type formatParam struct {
	key   string
	value string
}

var formatParams = map[Format]formatParam{
	FormatFlash:  {"flash", "1"},
	FormatPush:   {"push", "1"},
	FormatHLR:    {"hlr", "1"},
	FormatBin:    {"bin", "1"},
	FormatBinHex: {"bin", "2"},
	FormatPing:   {"ping", "1"},
	FormatMMS:    {"mms", "1"},
	FormatMail:   {"mail", "1"},
	FormatCall:   {"call", "1"},
	FormatViber:  {"viber", "1"},
	FormatSocial: {"soc", "1"},
}

// Params returns the extra send parameters for the format. Plain SMS and
// unrecognized codes add nothing.
func (f Format) Params() url.Values {
	p, ok := formatParams[f]
	if !ok {
		return url.Values{}
	}
	return url.Values{p.key: {p.value}}
}

// apply adds the format parameters to v.
func (f Format) apply(v url.Values) {
	for key, values := range f.Params() {
		v[key] = values
	}
}
