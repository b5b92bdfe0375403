// Package service runs ledger exports through validation, compilation and
// persistence.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/auditlog"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/batch"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/compiler"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/entitlement"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/validator"
	"github.com/goodnatureofminers/airdrop-compiler/pkg/safe"
	"github.com/goodnatureofminers/airdrop-compiler/pkg/workerpool"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options carries the distribution parameters of a pipeline.
type Options struct {
	RetainedFraction decimal.Decimal
	ConversionFactor decimal.Decimal
	Schedule         entitlement.Schedule
	// Batch enables the batch plan when set.
	Batch *batch.Config
	// AuditFile receives the audit trail of every run. When empty each ledger
	// gets a sibling file with a .log extension.
	AuditFile    string
	AuditConsole bool
	Workers      int
	Writer       WriterConfig
}

// Pipeline runs ledger files through validation, compilation, planning and
// optional persistence.
type Pipeline struct {
	reader     LedgerReader
	repo       RunRepository
	sink       auditlog.Sink
	newMetrics func(source string) PipelineMetrics
	writer     *accountWriter
	logger     *zap.Logger
	opts       Options

	newRunID func() string
	now      func() time.Time
}

// NewPipeline builds a Pipeline. repo may be nil to skip persistence.
func NewPipeline(
	reader LedgerReader,
	repo RunRepository,
	sink auditlog.Sink,
	newMetrics func(source string) PipelineMetrics,
	writerMetrics WriterMetrics,
	logger *zap.Logger,
	opts Options,
) (*Pipeline, error) {
	if reader == nil {
		return nil, errors.New("ledger reader is required")
	}
	if sink == nil {
		return nil, errors.New("audit sink is required")
	}
	if newMetrics == nil {
		return nil, errors.New("pipeline metrics are required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Schedule.InitialPercent.IsZero() && opts.Schedule.MonthlyPercent.IsZero() {
		opts.Schedule = entitlement.DefaultSchedule()
	}

	p := &Pipeline{
		reader:     reader,
		repo:       repo,
		sink:       sink,
		newMetrics: newMetrics,
		logger:     logger.Named("pipeline"),
		opts:       opts,
		newRunID:   uuid.NewString,
		now:        time.Now,
	}
	if repo != nil {
		if writerMetrics == nil {
			return nil, errors.New("writer metrics are required with a repository")
		}
		p.writer = newAccountWriter(repo, writerMetrics, logger, opts.Writer)
	}
	return p, nil
}

// RunFiles processes independent ledger files concurrently. Reports are
// index-aligned with paths; the first failure cancels the remaining files.
func (p *Pipeline) RunFiles(ctx context.Context, paths []string) ([]model.Report, error) {
	return workerpool.Map(ctx, p.opts.Workers, paths, p.Run, func() {
		p.logger.Warn("pipeline canceled after failure")
	})
}

// Run processes one ledger file.
func (p *Pipeline) Run(ctx context.Context, path string) (report model.Report, err error) {
	source := filepath.Base(path)
	metrics := p.newMetrics(source)
	started := p.now()
	defer func() {
		metrics.ObserveRun(err, started)
	}()

	report = model.Report{
		RunID:     p.newRunID(),
		Source:    path,
		StartedAt: started,
	}
	logger := p.logger.With(zap.String("run_id", report.RunID), zap.String("source", source))
	audit := auditlog.New(p.sink, p.auditDestination(path), p.opts.AuditConsole)

	rows, err := p.reader.Read(ctx, path)
	if err != nil {
		return model.Report{}, fmt.Errorf("read ledger %s: %w", path, err)
	}
	logger.Info("ledger loaded", zap.Int("rows", len(rows)))

	report.Validation, err = validator.New(audit).Validate(rows)
	if err != nil {
		return model.Report{}, fmt.Errorf("validate %s: %w", path, err)
	}
	metrics.ObserveValidation(report.Validation.ValidCount, report.Validation.InvalidCount, report.Validation.LineErrors)
	logger.Info("ledger validated",
		zap.Int("valid", report.Validation.ValidCount),
		zap.Int("invalid", report.Validation.InvalidCount),
		zap.Int("line_errors", report.Validation.LineErrors),
	)

	compileStarted := p.now()
	report.Compilation, err = compiler.New(audit).Compile(rows, report.Validation, p.opts.RetainedFraction, p.opts.ConversionFactor)
	metrics.ObserveCompilation(err, len(report.Compilation.Accounts), report.Compilation.TotalConverted, compiler.DestinationDecimals, compileStarted)
	if err != nil {
		return model.Report{}, fmt.Errorf("compile %s: %w", path, err)
	}

	entitlements, totals, err := p.opts.Schedule.Split(rows, report.Validation)
	if err != nil {
		return model.Report{}, fmt.Errorf("split entitlements %s: %w", path, err)
	}
	report.Entitlement = totals
	mismatches := entitlement.Reconcile(entitlements, report.Compilation)
	report.ScheduleMismatches = len(mismatches)
	if len(mismatches) > 0 {
		first := mismatches[0]
		logger.Warn("compiled balances differ from the initial airdrop schedule",
			zap.Int("accounts", len(mismatches)),
			zap.String("first_address", first.DestinationAddress),
			zap.Stringer("first_compiled", first.Compiled),
			zap.Stringer("first_scheduled", first.Scheduled),
		)
	}

	if p.opts.Batch != nil {
		report.Plan, err = batch.Plan(report.Compilation.Accounts, *p.opts.Batch)
		if err != nil {
			return model.Report{}, fmt.Errorf("plan batches %s: %w", path, err)
		}
		logger.Info("batch plan ready",
			zap.Int("batches", report.Plan.Batches),
			zap.Int("calls", len(report.Plan.Calls)),
			zap.Stringer("total_gas_cost", report.Plan.TotalGasCost),
		)
	}

	report.FinishedAt = p.now()

	if p.repo != nil {
		if err = p.persist(ctx, report); err != nil {
			return model.Report{}, fmt.Errorf("persist %s: %w", path, err)
		}
	}

	logger.Info("ledger compiled",
		zap.Int("accounts", len(report.Compilation.Accounts)),
		zap.Stringer("total_converted", report.Compilation.TotalConverted),
	)
	return report, nil
}

// persist writes the distribution list before the run summary so a stored
// run always has its accounts.
func (p *Pipeline) persist(ctx context.Context, report model.Report) error {
	if err := p.writer.write(ctx, report.RunID, report.Compilation.Accounts); err != nil {
		return err
	}

	run, err := runSummary(report, p.opts)
	if err != nil {
		return err
	}
	if err := p.repo.InsertRun(ctx, run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (p *Pipeline) auditDestination(path string) string {
	if p.opts.AuditFile != "" {
		return p.opts.AuditFile
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".log"
}

func runSummary(report model.Report, opts Options) (model.Run, error) {
	v := report.Validation
	counts, err := safe.Uint32s(len(v.Valid), v.ValidCount, v.InvalidCount, v.LineErrors, len(report.Compilation.Accounts))
	if err != nil {
		return model.Run{}, fmt.Errorf("run counters: %w", err)
	}
	return model.Run{
		RunID:                     report.RunID,
		Source:                    report.Source,
		StartedAt:                 report.StartedAt,
		FinishedAt:                report.FinishedAt,
		Rows:                      counts[0],
		ValidRows:                 counts[1],
		InvalidRows:               counts[2],
		LineErrors:                counts[3],
		UniqueAccounts:            counts[4],
		TotalSourceBalance:        v.TotalSourceBalance,
		InvalidSourceBalance:      v.InvalidSourceBalance,
		TotalDestinationBalance:   v.TotalDestinationBalance,
		InvalidDestinationBalance: v.InvalidDestinationBalance,
		TotalConverted:            report.Compilation.TotalConverted,
		RetainedFraction:          opts.RetainedFraction,
		ConversionFactor:          opts.ConversionFactor,
	}, nil
}
