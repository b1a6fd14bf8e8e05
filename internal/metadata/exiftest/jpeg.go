// Package exiftest builds minimal EXIF-bearing JPEG images for tests.
package exiftest

import (
	"encoding/binary"
)

const (
	tagMake         = 0x010F
	tagGPSPointer   = 0x8825
	tagMakerNote    = 0x927C
	tagInterop      = 0xA005
	tagCanonOwner   = 0x0009
	tagLatitudeRef  = 0x0001
	tagLatitude     = 0x0002
	tagLongitudeRef = 0x0003
	tagLongitude    = 0x0004

	typeASCII    = 2
	typeLong     = 4
	typeRational = 5
	typeUndef    = 7

	tiffHeaderSize = 8
	entrySize      = 12

	// brokenOffset points far past the end of any fixture.
	brokenOffset = 0xFFF0
)

// Rational is a numerator/denominator pair.
type Rational [2]uint32

// DMS returns a whole-number degrees/minutes/seconds triple.
func DMS(degrees, minutes, seconds uint32) []Rational {
	return []Rational{{degrees, 1}, {minutes, 1}, {seconds, 1}}
}

// GPS describes the GPS IFD to embed. Empty references and nil triples are
// left out of the IFD.
type GPS struct {
	Latitude     []Rational
	LatitudeRef  string
	Longitude    []Rational
	LongitudeRef string
}

// Options controls the content of the generated image.
type Options struct {
	Make string
	GPS  *GPS

	// CanonOwner adds a Canon maker note carrying the owner name. It is
	// stored inline, so only the first three bytes are kept. Make must be
	// "Canon" for the maker note to be parsed.
	CanonOwner string

	// BrokenInterop adds an interoperability pointer to a missing IFD.
	BrokenInterop bool
}

// Pittsburgh is 40°26'46" N, 79°58'56" W.
func Pittsburgh() *GPS {
	return &GPS{
		Latitude:     DMS(40, 26, 46),
		LatitudeRef:  "N",
		Longitude:    DMS(79, 58, 56),
		LongitudeRef: "W",
	}
}

// NoMetadata is a JPEG without any APP1 segment.
func NoMetadata() []byte {
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}
}

// XMPOnly is a JPEG whose only APP1 segment holds an XMP packet.
func XMPOnly() []byte {
	return app1JPEG(append([]byte("http://ns.adobe.com/xap/1.0/\x00"), "<x:xmpmeta/>"...))
}

// CorruptTIFF is a JPEG with an EXIF segment whose TIFF header has no valid
// byte order.
func CorruptTIFF() []byte {
	return app1JPEG([]byte("Exif\x00\x00XX\x2a\x00\x08\x00\x00\x00"))
}

// JPEG returns a little-endian EXIF JPEG built from opts.
func JPEG(opts Options) []byte {
	// IFD0 entries are kept in ascending tag order.
	var ifd0 []entry
	if opts.Make != "" {
		ifd0 = append(ifd0, asciiEntry(tagMake, opts.Make))
	}
	gpsIndex := -1
	if opts.GPS != nil {
		gpsIndex = len(ifd0)
		ifd0 = append(ifd0, longEntry(tagGPSPointer, 0))
	}
	if opts.CanonOwner != "" {
		note := canonNote(opts.CanonOwner)
		ifd0 = append(ifd0, entry{tag: tagMakerNote, typ: typeUndef, count: uint32(len(note)), data: note})
	}
	if opts.BrokenInterop {
		ifd0 = append(ifd0, longEntry(tagInterop, brokenOffset))
	}

	ifd0Size := len(encodeIFD(tiffHeaderSize, ifd0))

	var gpsIFD []byte
	if opts.GPS != nil {
		gpsOffset := uint32(tiffHeaderSize + ifd0Size)
		binary.LittleEndian.PutUint32(ifd0[gpsIndex].data, gpsOffset)
		gpsIFD = encodeIFD(gpsOffset, gpsEntries(opts.GPS))
	}

	tiff := []byte{'I', 'I', 42, 0, tiffHeaderSize, 0, 0, 0}
	tiff = append(tiff, encodeIFD(tiffHeaderSize, ifd0)...)
	tiff = append(tiff, gpsIFD...)

	return app1JPEG(append([]byte("Exif\x00\x00"), tiff...))
}

func app1JPEG(payload []byte) []byte {
	length := len(payload) + 2

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE1, byte(length >> 8), byte(length)}
	jpeg = append(jpeg, payload...)
	jpeg = append(jpeg, 0xFF, 0xD9)

	return jpeg
}

// canonNote is a header-less Canon maker note IFD with a single inline
// owner name entry.
func canonNote(owner string) []byte {
	value := make([]byte, 4)
	copy(value[:3], owner)

	order := binary.LittleEndian
	note := order.AppendUint16(nil, 1)
	note = order.AppendUint16(note, tagCanonOwner)
	note = order.AppendUint16(note, typeASCII)
	note = order.AppendUint32(note, 4)
	note = append(note, value...)

	return order.AppendUint32(note, 0)
}

type entry struct {
	tag   uint16
	typ   uint16
	count uint32
	data  []byte
}

func asciiEntry(tag uint16, value string) entry {
	data := append([]byte(value), 0x00)
	return entry{tag: tag, typ: typeASCII, count: uint32(len(data)), data: data}
}

func longEntry(tag uint16, value uint32) entry {
	return entry{tag: tag, typ: typeLong, count: 1, data: binary.LittleEndian.AppendUint32(nil, value)}
}

func rationalEntry(tag uint16, values []Rational) entry {
	data := make([]byte, 0, len(values)*8)
	for _, v := range values {
		data = binary.LittleEndian.AppendUint32(data, v[0])
		data = binary.LittleEndian.AppendUint32(data, v[1])
	}
	return entry{tag: tag, typ: typeRational, count: uint32(len(values)), data: data}
}

func gpsEntries(gps *GPS) []entry {
	var entries []entry
	if gps.LatitudeRef != "" {
		entries = append(entries, asciiEntry(tagLatitudeRef, gps.LatitudeRef))
	}
	if gps.Latitude != nil {
		entries = append(entries, rationalEntry(tagLatitude, gps.Latitude))
	}
	if gps.LongitudeRef != "" {
		entries = append(entries, asciiEntry(tagLongitudeRef, gps.LongitudeRef))
	}
	if gps.Longitude != nil {
		entries = append(entries, rationalEntry(tagLongitude, gps.Longitude))
	}
	return entries
}

// encodeIFD lays out a directory starting at offset, followed by the values
// that do not fit in the four byte entry slot.
func encodeIFD(offset uint32, entries []entry) []byte {
	order := binary.LittleEndian
	dataStart := offset + uint32(2+len(entries)*entrySize+4)

	buf := order.AppendUint16(nil, uint16(len(entries)))
	var extra []byte
	for _, e := range entries {
		buf = order.AppendUint16(buf, e.tag)
		buf = order.AppendUint16(buf, e.typ)
		buf = order.AppendUint32(buf, e.count)
		if len(e.data) <= 4 {
			slot := make([]byte, 4)
			copy(slot, e.data)
			buf = append(buf, slot...)
			continue
		}
		buf = order.AppendUint32(buf, dataStart+uint32(len(extra)))
		extra = append(extra, e.data...)
		if len(extra)%2 == 1 {
			extra = append(extra, 0)
		}
	}
	buf = order.AppendUint32(buf, 0)

	return append(buf, extra...)
}
