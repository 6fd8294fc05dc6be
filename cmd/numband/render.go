package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/crystalix007/numband/internal/config"
	"github.com/crystalix007/numband/numband"
)

// bandView is the printed form of a band.
type bandView struct {
	Index      int    `yaml:"index"`
	Interval   string `yaml:"interval"`
	Annotation string `yaml:"annotation,omitempty"`
}

// renderer prints results in the configured output format.
type renderer struct {
	w      io.Writer
	format config.Output
}

func newRenderer(w io.Writer, format config.Output) renderer {
	return renderer{w: w, format: format}
}

// Partition prints every band of p.
func (r renderer) Partition(p numband.Partition) error {
	views := make([]bandView, len(p))

	for i, band := range p {
		views[i] = newBandView(i, band)
	}

	if r.format == config.OutputYAML {
		return r.yaml(views)
	}

	for _, view := range views {
		if err := r.textBand(view); err != nil {
			return err
		}
	}

	return nil
}

// Band prints a single band.
func (r renderer) Band(i int, band numband.Band) error {
	view := newBandView(i, band)

	if r.format == config.OutputYAML {
		return r.yaml(view)
	}

	return r.textBand(view)
}

// History prints retained records.
func (r renderer) History(records []numband.RetainedRecord) error {
	if r.format == config.OutputYAML {
		if records == nil {
			records = []numband.RetainedRecord{}
		}

		return r.yaml(records)
	}

	return numband.WriteHistory(r.w, records)
}

func newBandView(i int, band numband.Band) bandView {
	return bandView{
		Index:      i,
		Interval:   band.Interval.String(),
		Annotation: band.Annotation,
	}
}

func (r renderer) textBand(view bandView) error {
	if view.Annotation == "" {
		_, err := fmt.Fprintf(r.w, "%d\t%s\n", view.Index, view.Interval)

		return err
	}

	_, err := fmt.Fprintf(r.w, "%d\t%s\t%s\n", view.Index, view.Interval, view.Annotation)

	return err
}

func (r renderer) yaml(v any) error {
	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
