package savedata

// DataKey is the key the crop tables are stored under within a save slot
const DataKey = "AdditionalCropData"

// FormatVersion is the current persisted format version.
// Version 0 (absent) is read as version 1.
const FormatVersion = 1

// zstdMagic is the little-endian zstd frame magic number 0xFD2FB528
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
