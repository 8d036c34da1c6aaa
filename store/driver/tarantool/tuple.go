package tarantool

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/polymodel/go-polymodel/store/driver"
)

// ErrUnexpectedTuple is returned when a stored tuple has too few fields.
var ErrUnexpectedTuple = errors.New("unexpected tuple format")

// entryTupleLen is the number of fields an entry tuple carries.
const entryTupleLen = 2

// TupleCodecError is returned when a tuple cannot be encoded or decoded.
type TupleCodecError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e TupleCodecError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Text, e.Err)
}

// Unwrap returns the underlying msgpack error.
func (e TupleCodecError) Unwrap() error {
	return e.Err
}

// entryTuple is the [key, value] tuple layout of the space.
type entryTuple struct {
	key   string
	value string
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t entryTuple) EncodeMsgpack(encoder *msgpack.Encoder) error {
	if err := encoder.EncodeArrayLen(entryTupleLen); err != nil {
		return TupleCodecError{Text: "encode tuple array length", Err: err}
	}

	if err := encoder.EncodeString(t.key); err != nil {
		return TupleCodecError{Text: "encode tuple key", Err: err}
	}

	if err := encoder.EncodeString(t.value); err != nil {
		return TupleCodecError{Text: "encode tuple value", Err: err}
	}

	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
// Extra trailing fields are skipped so wider spaces remain readable.
func (t *entryTuple) DecodeMsgpack(decoder *msgpack.Decoder) error {
	length, err := decoder.DecodeArrayLen()
	if err != nil {
		return TupleCodecError{Text: "decode tuple array length", Err: err}
	}

	if length < entryTupleLen {
		return fmt.Errorf("%w: expected at least %d fields, got %d", ErrUnexpectedTuple, entryTupleLen, length)
	}

	if t.key, err = decoder.DecodeString(); err != nil {
		return TupleCodecError{Text: "decode tuple key", Err: err}
	}

	if t.value, err = decoder.DecodeString(); err != nil {
		return TupleCodecError{Text: "decode tuple value", Err: err}
	}

	for i := entryTupleLen; i < length; i++ {
		if err := decoder.Skip(); err != nil {
			return TupleCodecError{Text: "skip extra tuple field", Err: err}
		}
	}

	return nil
}

func (t entryTuple) asEntry() driver.Entry {
	return driver.Entry{
		Key:         []byte(t.key),
		Value:       []byte(t.value),
		ModRevision: 0,
	}
}
