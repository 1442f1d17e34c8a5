package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, e := range store.All() {
				check := " "
				if e.Done.Get() {
					check = "x"
				}
				line := fmt.Sprintf("%d [%s] %s %s", i, check, e.ShortID(), e.Title.Get())
				if due, _ := dueConverter.ToString(e.Due.Get()); due != "" {
					line += " (due " + due + ")"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	addCmd = &cobra.Command{
		Use:   "add [title]",
		Short: "Adds an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := NewEntry()
			e.Title.Set(args[0])
			if raw, _ := cmd.Flags().GetString("due"); raw != "" {
				due, err := dueConverter.FromString(raw)
				if err != nil {
					return err
				}
				e.Due.Set(due)
			}
			store.Add(e)
			if err := flush(); err != nil {
				return err
			}
			fmt.Println(e.ID)
			return nil
		},
	}
	doneCmd = &cobra.Command{
		Use:   "done [id]",
		Short: "Marks an entry as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := find(args[0])
			if err != nil {
				return err
			}
			e.Done.Set(true)
			return flush()
		},
	}
	renameCmd = &cobra.Command{
		Use:   "rename [id] [title]",
		Short: "Changes the title of an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := find(args[0])
			if err != nil {
				return err
			}
			e.Title.Set(args[1])
			return flush()
		},
	}
	moveCmd = &cobra.Command{
		Use:   "move [id] [position]",
		Short: "Moves an entry to a new position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := find(args[0])
			if err != nil {
				return err
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position must be a number: %w", err)
			}
			if !store.Move(store.Index(e), to) {
				return fmt.Errorf("position %d out of range [0, %d)", to, store.Len())
			}
			return flush()
		},
	}
	removeCmd = &cobra.Command{
		Use:   "remove [id]",
		Short: "Removes an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := find(args[0])
			if err != nil {
				return err
			}
			store.Remove(e)
			return flush()
		},
	}
)

// find returns the entry whose id starts with prefix
func find(prefix string) (*Entry, error) {
	var match *Entry
	for _, e := range store.All() {
		if !strings.HasPrefix(e.ID, prefix) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id %q is ambiguous", prefix)
		}
		match = e
	}
	if match == nil {
		return nil, fmt.Errorf("no entry with id %q", prefix)
	}
	return match, nil
}

// flush reports write errors that the store only logs
func flush() error {
	if stats := store.Stats(); stats.RewriteErrors > 0 {
		return store.Flush()
	}
	return nil
}
