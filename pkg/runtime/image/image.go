// Package image serializes a heap's live values to a portable CBOR snapshot
// and restores them into a fresh heap. Closure code is serialized by entry
// point symbol and re-linked against a registry on restore.
package image

import (
	"fmt"

	"github.com/fern-lang/fern/pkg/runtime"
	"github.com/fxamacker/cbor/v2"
)

const Version = 1

// Canonical mode keeps snapshots byte-for-byte deterministic.
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("image: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

type Value struct {
	Ref  int32   `cbor:"ref"`
	Kind int     `cbor:"kind"`
	Int  int32   `cbor:"int,omitempty"`
	Sym  string  `cbor:"sym,omitempty"`
	Env  []int32 `cbor:"env,omitempty"`
}

type Image struct {
	Version int     `cbor:"version"`
	Values  []Value `cbor:"values"`
}

// Snapshot captures every live value of h. Environment entries referencing
// values that are no longer live are recorded as-is; Restore maps them to
// invalid refs.
func Snapshot(h *runtime.Heap) (*Image, error) {
	img := &Image{Version: Version}

	err := h.Live(func(ref runtime.Ref) error {
		val := Value{
			Ref:  int32(ref),
			Kind: int(h.Kind(ref)),
		}

		switch h.Kind(ref) {
		case runtime.KindInt:
			n, _ := h.Int(ref)
			val.Int = n
		case runtime.KindClosure:
			sym, _ := h.Sym(ref)
			env, _ := h.Env(ref)

			val.Sym = sym
			for _, entry := range env {
				val.Env = append(val.Env, int32(entry))
			}
		default:
			return fmt.Errorf("live value %d has unrecognized kind %d", ref, h.Kind(ref))
		}

		img.Values = append(img.Values, val)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}

// Marshal serializes an image to canonical CBOR bytes.
func Marshal(img *Image) ([]byte, error) {
	return encMode.Marshal(img)
}

// Unmarshal deserializes an image from CBOR bytes.
func Unmarshal(data []byte) (*Image, error) {
	var img Image
	err := cbor.Unmarshal(data, &img)
	if err != nil {
		return nil, fmt.Errorf("image: unmarshal: %w", err)
	}

	if img.Version != Version {
		return nil, fmt.Errorf("image: unsupported version %d", img.Version)
	}

	return &img, nil
}

// Restore constructs every value of img into h, in dependency order over
// environment references so each closure's captured values exist before the
// closure itself. It returns the mapping from image refs to new heap refs.
func Restore(img *Image, h *runtime.Heap) (map[int32]runtime.Ref, error) {
	ordered, err := order(img.Values)
	if err != nil {
		return nil, fmt.Errorf("image: restore: %w", err)
	}

	remap := make(map[int32]runtime.Ref, len(ordered))

	for _, val := range ordered {
		switch runtime.Kind(val.Kind) {
		case runtime.KindInt:
			remap[val.Ref] = h.NewInt(val.Int)
		case runtime.KindClosure:
			var env []runtime.Ref
			for _, entry := range val.Env {
				ref, ok := remap[entry]
				if !ok {
					ref = runtime.InvalidRef
				}
				env = append(env, ref)
			}

			remap[val.Ref] = h.NewClosure(val.Sym, env)
		default:
			return nil, fmt.Errorf("image: value %d has unrecognized kind %d", val.Ref, val.Kind)
		}
	}

	return remap, nil
}
