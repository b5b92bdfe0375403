// Package config loads the distribution parameters of an airdrop run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/batch"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/entitlement"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// file mirrors the YAML layout. Decimals are kept as strings so they are never
// routed through float64.
type file struct {
	RetainedFraction string `yaml:"retained_fraction"`
	ConversionFactor string `yaml:"conversion_factor"`
	LogFile          string `yaml:"log_file"`
	LogConsole       *bool  `yaml:"log_console"`
	Batch            struct {
		Size                   int    `yaml:"size"`
		InitialAirdropContract string `yaml:"initial_airdrop_contract"`
		DistributionContract   string `yaml:"distribution_contract"`
		InitialAirdropStart    string `yaml:"initial_airdrop_start"`
		DistributionStart      string `yaml:"distribution_start"`
		NonceOffset            uint64 `yaml:"nonce_offset"`
		Gas                    string `yaml:"gas"`
		GasPrice               string `yaml:"gas_price"`
	} `yaml:"batch"`
	Schedule struct {
		InitialPercent string `yaml:"initial_percent"`
		MonthlyPercent string `yaml:"monthly_percent"`
	} `yaml:"schedule"`
}

// Parameters are the resolved settings of a run.
type Parameters struct {
	RetainedFraction decimal.Decimal
	ConversionFactor decimal.Decimal
	LogFile          string
	LogConsole       bool
	Batch            batch.Config
	Schedule         entitlement.Schedule
}

// Load reads and validates the parameter file at path.
func Load(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("read parameters: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML parameters. Unknown keys are rejected.
func Parse(data []byte) (Parameters, error) {
	var raw file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Parameters{}, fmt.Errorf("decode parameters: %w", err)
	}

	retained, err := required("retained_fraction", raw.RetainedFraction)
	if err != nil {
		return Parameters{}, err
	}
	factor, err := required("conversion_factor", raw.ConversionFactor)
	if err != nil {
		return Parameters{}, err
	}
	if retained.IsNegative() || retained.GreaterThan(decimal.NewFromInt(1)) {
		return Parameters{}, fmt.Errorf("%w: retained_fraction %s outside [0, 1]", ErrInvalidParameter, retained)
	}
	if !factor.IsPositive() {
		return Parameters{}, fmt.Errorf("%w: conversion_factor %s must be positive", ErrInvalidParameter, factor)
	}

	schedule := entitlement.DefaultSchedule()
	if schedule.InitialPercent, err = optional("schedule.initial_percent", raw.Schedule.InitialPercent, schedule.InitialPercent); err != nil {
		return Parameters{}, err
	}
	if schedule.MonthlyPercent, err = optional("schedule.monthly_percent", raw.Schedule.MonthlyPercent, schedule.MonthlyPercent); err != nil {
		return Parameters{}, err
	}

	gas, err := optional("batch.gas", raw.Batch.Gas, decimal.Zero)
	if err != nil {
		return Parameters{}, err
	}
	gasPrice, err := optional("batch.gas_price", raw.Batch.GasPrice, decimal.Zero)
	if err != nil {
		return Parameters{}, err
	}

	size := raw.Batch.Size
	if size == 0 {
		size = batch.DefaultSize
	}

	logConsole := true
	if raw.LogConsole != nil {
		logConsole = *raw.LogConsole
	}

	return Parameters{
		RetainedFraction: retained,
		ConversionFactor: factor,
		LogFile:          raw.LogFile,
		LogConsole:       logConsole,
		Batch: batch.Config{
			Size:                   size,
			InitialAirdropContract: raw.Batch.InitialAirdropContract,
			DistributionContract:   raw.Batch.DistributionContract,
			InitialAirdropStart:    raw.Batch.InitialAirdropStart,
			DistributionStart:      raw.Batch.DistributionStart,
			NonceOffset:            raw.Batch.NonceOffset,
			Gas:                    gas,
			GasPrice:               gasPrice,
		},
		Schedule: schedule,
	}, nil
}

func required(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	return parseDecimal(name, value)
}

func optional(name, value string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if value == "" {
		return fallback, nil
	}
	return parseDecimal(name, value)
}

func parseDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", ErrInvalidParameter, name, err)
	}
	return d, nil
}
