// Package scan walks the fields of a wire-format message without a schema.
//
// It sits one layer above package wire: the primitive layer deliberately
// leaves the field key undecomposed, so the tag>>3 / tag&7 split happens
// here, at the call site. Scanner iterates key/value pairs in the style of
// bufio.Scanner, skipping over each payload so unrecognized fields cost
// nothing to pass:
//
//	s := scan.New(data)
//	for s.Scan() {
//		f := s.Field()
//		if f.Number == 1 && f.Type == wire.TypeVarint {
//			v, _ := f.Varint()
//			...
//		}
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
package scan
