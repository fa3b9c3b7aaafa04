package nlp

import (
	"fmt"
	"time"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateFinder finds absolute and relative date expressions
type DateFinder struct {
	parser *when.Parser
	now    func() time.Time
}

// NewDateFinder creates a finder with the English and common rule sets
func NewDateFinder() *DateFinder {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateFinder{parser: w, now: time.Now}
}

func (d *DateFinder) Find(text string) ([]entity.DataMatch, error) {
	r, err := d.parser.Parse(text, d.now())
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	if r == nil || r.Text == "" {
		return nil, nil
	}
	return []entity.DataMatch{{
		Entity: types.EntityDate,
		Start:  r.Index,
		End:    r.Index + len(r.Text),
	}}, nil
}
