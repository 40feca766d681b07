package serialization

import (
	"encoding/binary"
	"io"

	"github.com/kaspanet/kaspadns/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// MaxVarBytesLength is the maximum length of a length-prefixed byte
// slice or string that ReadElement accepts
const MaxVarBytesLength = 1 << 20

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	// Attempt to write the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case uint8:
		return write(w, []byte{e})

	case uint16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], e)
		return write(w, buf[:])

	case uint32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], e)
		return write(w, buf[:])

	case uint64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], e)
		return write(w, buf[:])

	case bool:
		if e {
			return write(w, []byte{0x01})
		}
		return write(w, []byte{0x00})

	case []byte:
		err := WriteElement(w, uint64(len(e)))
		if err != nil {
			return err
		}
		return write(w, e)

	case string:
		return WriteElement(w, []byte(e))

	case externalapi.DomainHash:
		return write(w, e.ByteSlice())

	case *externalapi.DomainHash:
		return write(w, e.ByteSlice())

	case externalapi.DomainTransactionID:
		return write(w, e.ByteArray()[:])

	case *externalapi.DomainTransactionID:
		return write(w, e.ByteArray()[:])

	case externalapi.DomainPublicKey:
		return write(w, e[:])

	case externalapi.DomainSignature:
		return write(w, e[:])
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

func write(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return errors.WithStack(err)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	// Attempt to read the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case *uint8:
		var buf [1]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = buf[0]
		return nil

	case *uint16:
		var buf [2]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint16(buf[:])
		return nil

	case *uint32:
		var buf [4]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:])
		return nil

	case *uint64:
		var buf [8]byte
		err := read(r, buf[:])
		if err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint64(buf[:])
		return nil

	case *bool:
		var rv uint8
		err := ReadElement(r, &rv)
		if err != nil {
			return err
		}
		if rv == 0x00 {
			*e = false
		} else if rv == 0x01 {
			*e = true
		} else {
			return errors.Wrapf(errMalformed, "in order to keep serialization canonical, true has to"+
				" always be 0x01")
		}
		return nil

	case *[]byte:
		var length uint64
		err := ReadElement(r, &length)
		if err != nil {
			return err
		}
		if length > MaxVarBytesLength {
			return errors.Wrapf(errMalformed, "byte slice of length %d is longer than the maximum %d",
				length, MaxVarBytesLength)
		}
		data := make([]byte, length)
		err = read(r, data)
		if err != nil {
			return err
		}
		*e = data
		return nil

	case *string:
		var data []byte
		err := ReadElement(r, &data)
		if err != nil {
			return err
		}
		*e = string(data)
		return nil

	case *externalapi.DomainHash:
		var hashBytes [externalapi.DomainHashSize]byte
		err := read(r, hashBytes[:])
		if err != nil {
			return err
		}
		*e = *externalapi.NewDomainHashFromByteArray(&hashBytes)
		return nil

	case *externalapi.DomainTransactionID:
		var hashBytes [externalapi.DomainHashSize]byte
		err := read(r, hashBytes[:])
		if err != nil {
			return err
		}
		*e = *externalapi.NewDomainTransactionIDFromByteArray(&hashBytes)
		return nil

	case *externalapi.DomainPublicKey:
		return read(r, e[:])

	case *externalapi.DomainSignature:
		return read(r, e[:])
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

func read(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return errors.WithStack(err)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}
