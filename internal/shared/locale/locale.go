package locale

import "github.com/changhyeonkim/tour-admin/go-api-server/internal/model"

// Pair is the JSON shape of a {ko, en} text. Both values are optional.
type Pair struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// Required is a Pair whose Korean text must be present
type Required struct {
	Ko string `json:"ko" binding:"required"`
	En string `json:"en"`
}

func (p Pair) Text() model.LocalizedText {
	return model.LocalizedText{Ko: p.Ko, En: p.En}
}

func (p Pair) Body() model.LocalizedBody {
	return model.LocalizedBody{Ko: p.Ko, En: p.En}
}

func (r Required) Text() model.LocalizedText {
	return model.LocalizedText{Ko: r.Ko, En: r.En}
}

func (r Required) Body() model.LocalizedBody {
	return model.LocalizedBody{Ko: r.Ko, En: r.En}
}

func FromText(t model.LocalizedText) Pair {
	return Pair{Ko: t.Ko, En: t.En}
}

func FromBody(b model.LocalizedBody) Pair {
	return Pair{Ko: b.Ko, En: b.En}
}
