// Package scriptnum implements the variable length integer encoding used by
// the script engine for numbers on the data stack.
//
// Numbers are encoded little-endian (least significant byte first) in
// sign-magnitude form. Every byte except the last holds 8 raw magnitude bits.
// The most significant bit of the last byte is the sign flag (1 for negative)
// and its remaining 7 bits are the top of the magnitude. Zero encodes as the
// empty byte sequence.
//
// When the top magnitude byte already has its high bit set, a trailing sign
// byte (0x80 or 0x00) is appended so that the magnitude bit is not misread as
// the sign flag.
//
// Example encodings:
//
//     127 -> [0x7f]
//    -127 -> [0xff]
//     128 -> [0x80 0x00]
//    -128 -> [0x80 0x80]
//     129 -> [0x81 0x00]
//    -129 -> [0x81 0x80]
//     256 -> [0x00 0x01]
//    -256 -> [0x00 0x81]
//   32767 -> [0xff 0x7f]
//  -32767 -> [0xff 0xff]
//   32768 -> [0x00 0x80 0x00]
//  -32768 -> [0x00 0x80 0x80]
//
// A given integer has exactly one minimal encoding, and consensus requires
// numbers read off the stack to use it. IsMinimallyEncoded reports whether a
// sequence is acceptable and MinimallyEncode rewrites a redundant sequence to
// its canonical form. Encoding is always minimal; validation of externally
// supplied sequences is the caller's responsibility and is what MakeNum is
// for.
package scriptnum
