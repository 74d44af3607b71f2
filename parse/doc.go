// Package parse implements the ISO/IEC 15434 message parser.
//
// The parser locates the mandatory message envelope ("[)>" RS ... EOT),
// searches its payload for nested format envelopes, and splits each
// format's payload into field strings on that format's separator byte.
// When no format envelope is present, the payload is handed to the
// parser's configured default format.
//
//	p := parse.New()
//	fields, err := p.Parse(data)
//	if err != nil {
//	    log.Fatal("parse error:", err)
//	}
//	for _, f := range fields[message.ANSIMH10] {
//	    fmt.Println(f) // e.g. "S123456"
//	}
//
// # Parser Options
//
//	p := parse.New(
//	    parse.WithDefaultFormat(message.ANSIMH10),
//	    parse.WithMaxFields(1000),
//	    parse.WithMaxFieldLength(4096),
//	)
//
// # DoS Protection
//
// MaxFields and MaxFieldLength bound the number and size of fields a
// single format payload may contain, preventing a maliciously large
// input from exhausting memory during splitting.
package parse
