// Package report collects rule violations found by passes and renders them.
package report
