// vecshell is an interactive REPL for exercising a vector.Vector[int] from
// the command line.
//
// Usage:
//
//	vecshell [options]
//
// Options:
//
//	-c, --capacity int   Initial capacity (default 8)
//	-r, --circular       Open in fixed-capacity circular mode
//	-w, --wipe           Enable secure wipe of removed elements
//
// Commands (in REPL):
//
//	push <n>             Insert n at the tail
//	pushfront <n>        Insert n at the head
//	pop                  Remove and print the tail element
//	popfront             Remove and print the head element
//	get <i>              Print the element at index i
//	put <i> <n>          Overwrite the element at index i with n
//	insert <i> <n>       Insert n at index i
//	remove <i>           Remove and print the element at index i
//	delete <i> <k>       Delete k+1 contiguous elements starting at i
//	swap <i> <j>         Exchange the elements at i and j
//	rotate <n>           Rotate the live range left by n (negative rotates right)
//	sort                 Sort the live range ascending
//	search <n>           Binary search for n
//	list                 Print every live element
//	len                  Print the current size
//	cap                  Print the current capacity
//	clear                Empty the vector
//	shrink               Compress capacity toward the current size
//	locktype             Print the currently admitted lock priority
//	help                 Show this help
//	exit / quit / q      Exit
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"

	"github.com/pzaino/vector/pkg/vector"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	capacity := pflag.Uint64P("capacity", "c", 8, "initial capacity")
	circular := pflag.BoolP("circular", "r", false, "open in fixed-capacity circular mode")
	wipe := pflag.BoolP("wipe", "w", false, "enable secure wipe of removed elements")
	pflag.Parse()

	opts := []vector.Option[int]{vector.WithCapacity[int](*capacity)}
	if *circular {
		opts = append(opts, vector.WithCircular[int]())
	}

	if *wipe {
		opts = append(opts, vector.WithSecureWipe[int]())
	}

	v, err := vector.New[int](opts...)
	if err != nil {
		return fmt.Errorf("creating vector: %w", err)
	}

	shell := &shell{v: v}

	return shell.run()
}

type shell struct {
	v     *vector.Vector[int]
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".vecshell_history")
}

func (s *shell) run() error {
	s.liner = liner.NewLiner()
	defer s.liner.Close()

	s.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = s.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("vecshell - vector.Vector[int] CLI (capacity=%d, circular=%v)\n", s.v.Cap(), s.v.IsCircular())
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := s.liner.Prompt("vec> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF { //nolint:errorlint // liner sentinel compared directly
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.liner.AppendHistory(line)

		if s.dispatch(strings.Fields(line)) {
			break
		}
	}

	s.saveHistory()

	return nil
}

func (s *shell) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		_, _ = s.liner.WriteHistory(f)
		f.Close()
	}
}

// dispatch runs one command and reports whether the REPL should exit.
func (s *shell) dispatch(parts []string) bool {
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "exit", "quit", "q":
		fmt.Println("Bye!")

		return true
	case "help", "?":
		printHelp()
	case "push":
		s.cmdPush(args)
	case "pushfront":
		s.cmdPushFront(args)
	case "pop":
		s.cmdPop()
	case "popfront":
		s.cmdPopFront()
	case "get":
		s.cmdGet(args)
	case "put":
		s.cmdPut(args)
	case "insert":
		s.cmdInsert(args)
	case "remove":
		s.cmdRemove(args)
	case "delete":
		s.cmdDelete(args)
	case "swap":
		s.cmdSwap(args)
	case "rotate":
		s.cmdRotate(args)
	case "sort":
		s.cmdSort()
	case "search":
		s.cmdSearch(args)
	case "list", "ls":
		s.cmdList()
	case "len", "count":
		fmt.Println(s.v.Len())
	case "cap":
		fmt.Println(s.v.Cap())
	case "clear":
		s.report(s.v.Clear())
	case "shrink":
		s.report(s.v.Shrink())
	case "locktype":
		fmt.Println(s.v.LockType())
	default:
		fmt.Printf("unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

func printHelp() {
	fmt.Print(`commands:
  push <n>             insert n at the tail
  pushfront <n>        insert n at the head
  pop                  remove and print the tail element
  popfront             remove and print the head element
  get <i>              print the element at index i
  put <i> <n>          overwrite the element at index i with n
  insert <i> <n>       insert n at index i
  remove <i>           remove and print the element at index i
  delete <i> <k>       delete k+1 contiguous elements starting at i
  swap <i> <j>         exchange the elements at i and j
  rotate <n>           rotate the live range left by n (negative rotates right)
  sort                 sort the live range ascending
  search <n>           binary search for n
  list                 print every live element
  len                  print the current size
  cap                  print the current capacity
  clear                empty the vector
  shrink               compress capacity toward the current size
  locktype             print the currently admitted lock priority
  help                 show this help
  exit / quit / q      exit
`)
}

func (s *shell) report(err error) {
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("ok")
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("not a number: %q\n", raw)

		return 0, false
	}

	return n, true
}

func (s *shell) cmdPush(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: push <n>")

		return
	}

	n, ok := parseInt(args[0])
	if !ok {
		return
	}

	s.report(s.v.PushBack(n))
}

func (s *shell) cmdPushFront(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: pushfront <n>")

		return
	}

	n, ok := parseInt(args[0])
	if !ok {
		return
	}

	s.report(s.v.PushFront(n))
}

func (s *shell) cmdPop() {
	val, err := s.v.PopBack()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(val)
}

func (s *shell) cmdPopFront() {
	val, err := s.v.PopFront()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(val)
}

func (s *shell) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: get <i>")

		return
	}

	i, ok := parseInt(args[0])
	if !ok {
		return
	}

	val, err := s.v.Get(i)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(val)
}

func (s *shell) cmdPut(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: put <i> <n>")

		return
	}

	i, ok := parseInt(args[0])
	if !ok {
		return
	}

	n, ok := parseInt(args[1])
	if !ok {
		return
	}

	s.report(s.v.PutAt(i, n))
}

func (s *shell) cmdInsert(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: insert <i> <n>")

		return
	}

	i, ok := parseInt(args[0])
	if !ok {
		return
	}

	n, ok := parseInt(args[1])
	if !ok {
		return
	}

	s.report(s.v.InsertAt(i, n, vector.ModeStrict))
}

func (s *shell) cmdRemove(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: remove <i>")

		return
	}

	i, ok := parseInt(args[0])
	if !ok {
		return
	}

	val, err := s.v.RemoveAt(i, vector.ModeStrict)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(val)
}

func (s *shell) cmdDelete(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: delete <i> <k>")

		return
	}

	i, ok := parseInt(args[0])
	if !ok {
		return
	}

	k, ok := parseInt(args[1])
	if !ok {
		return
	}

	s.report(s.v.DeleteRange(i, k))
}

func (s *shell) cmdSwap(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: swap <i> <j>")

		return
	}

	i, ok := parseInt(args[0])
	if !ok {
		return
	}

	j, ok := parseInt(args[1])
	if !ok {
		return
	}

	s.report(s.v.Swap(i, j))
}

func (s *shell) cmdRotate(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: rotate <n>")

		return
	}

	n, ok := parseInt(args[0])
	if !ok {
		return
	}

	if n < 0 {
		s.report(s.v.RotateRight(-n))

		return
	}

	s.report(s.v.RotateLeft(n))
}

func (s *shell) cmdSort() {
	s.report(s.v.Sort(func(a, b int) int { return a - b }))
}

func (s *shell) cmdSearch(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: search <n>")

		return
	}

	n, ok := parseInt(args[0])
	if !ok {
		return
	}

	idx, found, err := s.v.Search(n, func(a, b int) int { return a - b })
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if found {
		fmt.Printf("found at index %d\n", idx)

		return
	}

	fmt.Printf("not found; insertion point %d\n", idx)
}

func (s *shell) cmdList() {
	n := s.v.Len()

	items := make([]string, n)
	for i := 0; i < n; i++ {
		val, err := s.v.Get(i)
		if err != nil {
			fmt.Println("error:", err)

			return
		}

		items[i] = strconv.Itoa(val)
	}

	fmt.Println("[" + strings.Join(items, ", ") + "]")
}
