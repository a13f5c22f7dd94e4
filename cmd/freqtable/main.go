package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/scottcagno/freqtable/pkg/hashtable/linear"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "freqtable",
		Short: "String frequency table backed by a linear probing hashtable",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		size int
		topN int
		dump bool
	)

	countCmd := &cobra.Command{
		Use:   "count [files...]",
		Short: "Count word frequencies from files or stdin",
		Run: func(cmd *cobra.Command, args []string) {
			tbl, err := linear.NewTable(size)
			if err != nil {
				log.Fatalf("bad table size: %v", err)
			}
			if len(args) == 0 {
				countWords(tbl, os.Stdin)
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					log.Fatalf("open %s: %v", path, err)
				}
				countWords(tbl, f)
				f.Close()
			}
			printStats(tbl)
			printTop(tbl, topN)
			if dump {
				fmt.Println(tbl)
			}
		},
	}
	countCmd.Flags().IntVar(&size, "size", linear.DefaultTableSize, "initial table size")
	countCmd.Flags().IntVar(&topN, "top", 10, "number of most frequent words to print")
	countCmd.Flags().BoolVar(&dump, "dump", false, "print the raw slot rendering")

	hashCmd := &cobra.Command{
		Use:   "hash [words...]",
		Short: "Print hash values for words at a given table size",
		Run: func(cmd *cobra.Command, args []string) {
			tbl, err := linear.NewTable(size)
			if err != nil {
				log.Fatalf("bad table size: %v", err)
			}
			for _, word := range args {
				fmt.Printf("%d\t%s\n", tbl.Hash(word), word)
			}
		},
	}
	hashCmd.Flags().IntVar(&size, "size", linear.DefaultTableSize, "table size to hash against")

	rootCmd.AddCommand(countCmd, hashCmd, newShellCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// countWords scans r word by word and inserts every normalized token
func countWords(tbl *linear.Table, r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if word := normalize(sc.Text()); word != "" {
			tbl.Insert(word)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("scan: %v", err)
	}
}

// normalize lowercases a token and trims anything that is not a letter
// from both ends, so "Dog," and "dog" count as the same word
func normalize(tok string) string {
	return strings.TrimFunc(strings.ToLower(tok), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func printStats(tbl *linear.Table) {
	stats := tbl.Stats()
	fmt.Printf("keys: %d, occupied: %d, capacity: %d, collisions: %d, load: %.2f\n",
		stats.Keys, stats.Occupied, stats.Capacity, stats.Collisions, stats.LoadFactor)
}

// printTop renders the n most frequent words, ties broken alphabetically
func printTop(tbl *linear.Table, n int) {
	type wordCount struct {
		word string
		n    int
	}
	var counts []wordCount
	tbl.Range(func(key string, freq int) bool {
		counts = append(counts, wordCount{key, freq})
		return true
	})
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].word < counts[j].word
	})
	if n > len(counts) {
		n = len(counts)
	}
	for _, wc := range counts[:n] {
		fmt.Printf("%6d  %s\n", wc.n, wc.word)
	}
}
