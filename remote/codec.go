package remote

import (
	"bytes"
	"fmt"
	"io"
)

// ArgsEncoder is implemented by an Args tuple that knows how to serialize
// its own fields. The core fixes only the NUL-terminated framing (id, then
// one NUL-terminated chunk per argument); value serialization itself is
// left to the caller's codec.
type ArgsEncoder interface {
	EncodeFields() ([][]byte, error)
}

// ArgsDecoder is implemented by a pointer to an Args tuple that knows how
// to populate itself from the raw per-field chunks a frame carried.
type ArgsDecoder interface {
	DecodeFields(fields [][]byte) error
}

// encodeFrame writes id followed by each of args' encoded fields into w,
// each segment NUL-terminated.
func encodeFrame(w io.Writer, id DelegateID, args ArgsEncoder) error {
	fields, err := args.EncodeFields()
	if err != nil {
		return fmt.Errorf("remote: encode args: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%d", int(id)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0}); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := w.Write(f); err != nil {
			return err
		}
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

// decodeFrame splits a raw frame into its id and the NUL-delimited
// argument chunks, reporting ErrRemoteDecode if the leading id segment
// isn't a valid integer.
func decodeFrame(frame []byte) (DelegateID, [][]byte, error) {
	segments := bytes.Split(frame, []byte{0})
	// a trailing NUL produces one empty trailing segment; drop it.
	if n := len(segments); n > 0 && len(segments[n-1]) == 0 {
		segments = segments[:n-1]
	}
	if len(segments) == 0 {
		return 0, nil, fmt.Errorf("%w: empty frame", ErrRemoteDecode)
	}

	var id int
	if _, err := fmt.Sscanf(string(segments[0]), "%d", &id); err != nil {
		return 0, nil, fmt.Errorf("%w: invalid id segment: %v", ErrRemoteDecode, err)
	}
	return DelegateID(id), segments[1:], nil
}
