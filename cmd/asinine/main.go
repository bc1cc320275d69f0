// Command asinine is a thin demonstrator over the asinine package: it
// parses a DER/BER file and prints its TLV structure, or checks a single
// OID against a dotted-notation string. None of its logic belongs to the
// core decoder — it only ever calls the exported asinine API.
package main

func main() {
	execute()
}
