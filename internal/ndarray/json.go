package ndarray

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/shape"
	"github.com/x448/float16"
)

// String returns a short description of the view.
func (v *View) String() string {
	flags := ""
	if v.readOnly {
		flags = " readonly"
	}
	return fmt.Sprintf("ndarray[%s]%v strides=%v offset=%d %s%s",
		v.dtype, []int(v.shape), v.strides, v.offset, v.order, flags)
}

// jsonView is the serialized form of a View.
type jsonView struct {
	Type    string          `json:"type"`
	DType   string          `json:"dtype"`
	Flags   map[string]bool `json:"flags"`
	Order   string          `json:"order"`
	Shape   []int           `json:"shape"`
	Strides []int           `json:"strides"`
	Offset  int             `json:"offset"`
	Data    []any           `json:"data"`
}

// MarshalJSON encodes the view's metadata and its elements. Data lists the elements in
// the view's order, so a contiguous view of that order rebuilds the same array.
// Complex values encode as [re, im]; non-finite floats encode as "NaN", "+Inf" and
// "-Inf".
func (v *View) MarshalJSON() ([]byte, error) {
	out := jsonView{
		Type:    "ndarray",
		DType:   v.dtype.String(),
		Flags:   map[string]bool{"READONLY": v.readOnly},
		Order:   v.order.String(),
		Shape:   []int(v.shape.Clone()),
		Strides: v.Strides(),
		Offset:  v.offset,
		Data:    make([]any, 0, v.NumElements()),
	}
	for i := 0; i < v.NumElements(); i++ {
		subs, err := shape.Ind2Sub(v.shape, v.order, i, shape.Throw)
		if err != nil {
			return nil, err
		}
		out.Data = append(out.Data, jsonValue(v.buf.Get(v.position(subs))))
	}
	return json.Marshal(out)
}

func jsonValue(x any) any {
	switch z := x.(type) {
	case float64:
		return jsonFloat(z)
	case float32:
		return jsonFloat(float64(z))
	case float16.Float16:
		return jsonFloat(float64(z.Float32()))
	case complex128:
		return []any{jsonFloat(real(z)), jsonFloat(imag(z))}
	case complex64:
		return []any{jsonFloat(float64(real(z))), jsonFloat(float64(imag(z)))}
	}
	return x
}

func jsonFloat(f float64) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return f
}
