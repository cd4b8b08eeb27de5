package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/gosuda/algofr/examples"
	"github.com/gosuda/algofr/store"
)

// runStoreCommand handles the flags that only manage saved algorithms or
// list examples. It reports whether there is nothing left to run.
func runStoreCommand(cfg appConfig, st *store.Store, w io.Writer) (bool, error) {
	switch {
	case cfg.examples:
		list, err := examples.All()
		if err != nil {
			return true, err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, ex := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.Slug, ex.Title, ex.Description)
		}
		return true, tw.Flush()
	case cfg.list:
		list, err := st.List()
		if err != nil {
			return true, err
		}
		if len(list) == 0 {
			fmt.Fprintln(w, "aucun algorithme enregistré")
			return true, nil
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, a := range list {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", a.ID, a.Name, a.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return true, tw.Flush()
	case cfg.deleteID != 0:
		if err := st.Delete(cfg.deleteID); err != nil {
			return true, err
		}
		fmt.Fprintf(w, "algorithme %d supprimé\n", cfg.deleteID)
		return true, nil
	case cfg.save != "":
		if cfg.file == "" {
			return true, errors.New("-save needs -file")
		}
		b, err := os.ReadFile(cfg.file)
		if err != nil {
			return true, err
		}
		if existing, err := st.FindByName(cfg.save); err == nil {
			code := string(b)
			a, err := st.Update(existing.ID, store.Patch{Code: &code})
			if err != nil {
				return true, err
			}
			fmt.Fprintf(w, "algorithme %d mis à jour (%s)\n", a.ID, a.Name)
			return true, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return true, err
		}
		a, err := st.Create(cfg.save, string(b))
		if err != nil {
			return true, err
		}
		fmt.Fprintf(w, "algorithme %d enregistré (%s)\n", a.ID, a.Name)
		return true, nil
	}
	return false, nil
}

func resolveSource(cfg appConfig, st *store.Store) (source, error) {
	var src source
	switch {
	case cfg.file != "":
		b, err := os.ReadFile(cfg.file)
		if err != nil {
			return src, fmt.Errorf("load file: %w", err)
		}
		src = source{name: filepath.Base(cfg.file), code: string(b)}
	case cfg.example != "":
		ex, ok := examples.Lookup(cfg.example)
		if !ok {
			return src, fmt.Errorf("unknown example %q (see -examples)", cfg.example)
		}
		src = source{name: ex.Title, code: ex.Code}
		if cfg.sample {
			src.inputs = ex.Inputs
		}
	case cfg.load != "":
		a, err := st.FindByName(cfg.load)
		if err != nil {
			return src, fmt.Errorf("load algorithm: %w", err)
		}
		src = source{name: a.Name, code: a.Code}
	default:
		return src, errors.New("nothing to run: give -file, -example or -load")
	}
	if len(cfg.inputs) > 0 {
		src.inputs = cfg.inputs
	}
	return src, nil
}
