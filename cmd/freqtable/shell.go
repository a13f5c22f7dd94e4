package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/scottcagno/freqtable/pkg/hashtable/linear"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive frequency table console",
		Run: func(cmd *cobra.Command, args []string) {
			tbl, err := linear.NewTable(size)
			if err != nil {
				fmt.Println("bad table size:", err)
				os.Exit(1)
			}
			runShell(tbl)
		},
	}
	cmd.Flags().IntVar(&size, "size", linear.DefaultTableSize, "initial table size")
	return cmd
}

// runShell reads commands line by line until quit or EOF, supporting
// arrow keys and command history
func runShell(tbl *linear.Table) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(os.TempDir(), "freqtable_history.txt"),
	})
	if err != nil {
		fmt.Println("failed to start readline:", err)
		return
	}
	defer rl.Close()

	fmt.Println(`type "help" for the command list`)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		verb, args := fields[0], fields[1:]
		if verb == "quit" || verb == "exit" {
			return
		}
		eval(tbl, verb, args)
	}
}

func eval(tbl *linear.Table, verb string, args []string) {
	switch verb {
	case "insert":
		for _, key := range args {
			tbl.Insert(key)
		}
	case "remove":
		for _, key := range args {
			if removed, ok := tbl.Remove(key); ok {
				fmt.Println("removed:", removed)
			} else {
				fmt.Println("not found:", key)
			}
		}
	case "find":
		for _, key := range args {
			fmt.Println(key, tbl.Contains(key))
		}
	case "freq":
		for _, key := range args {
			fmt.Println(key, tbl.Frequency(key))
		}
	case "hash":
		for _, key := range args {
			fmt.Println(key, tbl.Hash(key))
		}
	case "len":
		fmt.Println(tbl.Len())
	case "stats":
		printStats(tbl)
	case "show":
		fmt.Println(tbl)
	case "help":
		fmt.Println("commands: insert, remove, find, freq, hash, len, stats, show, quit")
	default:
		fmt.Println("unknown command:", verb)
	}
}
