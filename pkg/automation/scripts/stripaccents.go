package scripts

import (
	"context"

	"github.com/xsoar-content/k8s-automation/log"
	"github.com/xsoar-content/k8s-automation/pkg/accents"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/util"
	autoerrors "github.com/xsoar-content/k8s-automation/util/errors"
	"go.uber.org/zap"
)

// StripAccentMarks removes diacritical marks from its value argument.
type StripAccentMarks struct {
	logger *zap.Logger
}

func NewStripAccentMarks(logger *zap.Logger) *StripAccentMarks {
	return &StripAccentMarks{logger: log.OrNop(logger).With(zap.String("script", util.StripAccentMarksScript))}
}

func (s *StripAccentMarks) Name() string {
	return util.StripAccentMarksScript
}

func (s *StripAccentMarks) Run(_ context.Context, args automation.Args) (*automation.Entry, error) {
	value, ok := args[util.ValueArg]
	if !ok {
		return nil, autoerrors.Errorf(s.Name(), autoerrors.ParseArguments, "%w: %s", autoerrors.ErrMissingArgument, util.ValueArg)
	}
	stripped := accents.Strip(value)
	s.logger.Debug("Stripped accent marks", zap.Int("runes", len([]rune(stripped))))
	return automation.TextEntry(stripped), nil
}
