package providers

import (
	"fmt"

	"github.com/gookit/validate"
	"github.com/lquan-tech/porfolio/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate runs the struct tag rules, then the playlist checks the tags
// cannot express (per-element fields of a slice).
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}

	if len(cv.conf.Player.Tracks) == 0 {
		return fmt.Errorf("player: at least one track required")
	}
	seen := make(map[string]struct{}, len(cv.conf.Player.Tracks))
	for i, tr := range cv.conf.Player.Tracks {
		if tr.ID == "" || tr.Title == "" || tr.Source == "" {
			return fmt.Errorf("player: track %d missing id, title or source", i)
		}
		if tr.Duration <= 0 {
			return fmt.Errorf("player: track %q duration must be > 0", tr.ID)
		}
		if _, dup := seen[tr.ID]; dup {
			return fmt.Errorf("player: duplicate track id %q", tr.ID)
		}
		seen[tr.ID] = struct{}{}
	}

	return nil
}
