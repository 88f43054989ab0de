package rdesc

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/petuhovskiy/lotterybox/internal/lottery"
)

// Plan describes the initial contents of a pool. Can be loaded from YAML or
// JSON.
type Plan struct {
	// Name of the pool, used in logs and metrics.
	Name string `yaml:"name"`
	// Capacity limits the total number of tickets. Zero means no limit.
	Capacity int `yaml:"capacity"`
	// MaxEntries limits the number of distinct items. Zero means no limit.
	MaxEntries int `yaml:"max_entries"`
	// Return decides whether a drawn ticket is put back into the pool.
	// If not set, drawn tickets are never returned.
	Return Wrand[bool] `yaml:"return"`
	// Deposits are applied in order, rows that don't fit are skipped.
	Deposits []Deposit `yaml:"deposits"`
}

// Deposit is a single row of a plan. Negative counts withdraw tickets
// deposited by earlier rows.
type Deposit struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count"`
}

const defaultPlanName = "default"

func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	err := yaml.Unmarshal(data, &plan)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}

	if plan.Name == "" {
		plan.Name = defaultPlanName
	}
	if plan.Capacity < 0 {
		return nil, fmt.Errorf("negative capacity %d", plan.Capacity)
	}
	if plan.MaxEntries < 0 {
		return nil, fmt.Errorf("negative max_entries %d", plan.MaxEntries)
	}
	if len(plan.Return) > 0 && !plan.Return.Valid() {
		return nil, fmt.Errorf("return has no positive weights")
	}

	return &plan, nil
}

func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return ParsePlan(data)
}

// Options converts plan limits to pool options.
func (p *Plan) Options() []lottery.Option {
	var opts []lottery.Option
	if p.Capacity > 0 {
		opts = append(opts, lottery.WithCapacity(p.Capacity))
	}
	if p.MaxEntries > 0 {
		opts = append(opts, lottery.WithMaxEntries(p.MaxEntries))
	}
	return opts
}

// ShouldReturn picks with r whether a drawn ticket goes back to the pool.
func (p *Plan) ShouldReturn(r lottery.Rand) bool {
	if !p.Return.Valid() {
		return false
	}
	return p.Return.Pick(r)
}

// Build creates a pool and fills it with the plan deposits. Extra options are
// applied after the plan ones.
func (p *Plan) Build(logger *zap.Logger, opts ...lottery.Option) *lottery.Pool[string] {
	opts = append(append(p.Options(), lottery.WithLogger(logger)), opts...)
	pool := lottery.New[string](opts...)

	applied := pool.ModifySeq(p.deposits())
	logger.Info(
		"pool built from plan",
		zap.String("pool", p.Name),
		zap.Int("rows", len(p.Deposits)),
		zap.Int("applied", applied),
		zap.Int("tickets", pool.Count()),
	)
	return pool
}

func (p *Plan) deposits() func(yield func(string, int) bool) {
	return func(yield func(string, int) bool) {
		for _, d := range p.Deposits {
			if !yield(d.Item, d.Count) {
				return
			}
		}
	}
}
