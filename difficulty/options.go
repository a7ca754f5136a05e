package difficulty

// Option adjusts Params on top of Default. Options never panic: range checks
// happen in Validate so configuration errors surface as *ParamError.
type Option func(*Params)

// New applies opts over Default and validates the result.
func New(opts ...Option) (Params, error) {
	p := Default()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// WithBranchLengthBias sets Params.BranchLengthBias.
func WithBranchLengthBias(v float64) Option { return func(p *Params) { p.BranchLengthBias = v } }

// WithOneWayRatio sets Params.OneWayRatio.
func WithOneWayRatio(v float64) Option { return func(p *Params) { p.OneWayRatio = v } }

// WithBacklinkRatio sets Params.BacklinkRatio.
func WithBacklinkRatio(v float64) Option { return func(p *Params) { p.BacklinkRatio = v } }

// WithLoops sets the loop count and both loop acceptance thresholds.
func WithLoops(count, minBackboneDistance int, minStartDelta float64) Option {
	return func(p *Params) {
		p.LoopEdgeCount = count
		p.LoopMinBackboneDistance = minBackboneDistance
		p.LoopMinStartDelta = minStartDelta
	}
}

// WithPruneAttempts sets Params.PruneAttempts.
func WithPruneAttempts(n int) Option { return func(p *Params) { p.PruneAttempts = n } }

// WithStageAttempts sets Params.StageAttempts.
func WithStageAttempts(n int) Option { return func(p *Params) { p.StageAttempts = n } }

// WithCulling toggles Params.CullPassThroughNodes.
func WithCulling(on bool) Option { return func(p *Params) { p.CullPassThroughNodes = on } }

// WithCollectibles sets Params.CollectibleCount.
func WithCollectibles(n int) Option { return func(p *Params) { p.CollectibleCount = n } }
