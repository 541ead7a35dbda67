package dto

type SummaryOutput struct {
	IntakeML         float64
	GoalML           float64
	Ratio            float64
	Percent          float64
	RemainingML      float64
	GlassesRemaining int
	Unit             string
	IntakeText       string
	GoalText         string
	Line             string
	GoalReached      bool
}
