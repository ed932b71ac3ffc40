package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"

	"github.com/can-gurkan/lear/candidates"
	"github.com/can-gurkan/lear/checks"
	"github.com/can-gurkan/lear/cmds"
	"github.com/can-gurkan/lear/debugs"
	"github.com/can-gurkan/lear/modes"
	"github.com/can-gurkan/lear/netlogo"
	"github.com/reusee/dscope"
)

var (
	verifyPath string
	checkPath  string
	batchDir   string
	watchDir   string
	tokensPath string
	repl       bool
)

func init() {
	cmds.Define("verify", cmds.Func(func(path string) {
		verifyPath = path
	}).Desc("print the verdict of a rule file, - for stdin"))
	cmds.Define("check", cmds.Func(func(path string) {
		checkPath = path
	}).Desc("verify a rule file and run all checks"))
	cmds.Define("batch", cmds.Func(func(dir string) {
		batchDir = dir
	}).Desc("verify every rule file in a directory"))
	cmds.Define("watch", cmds.Func(func(dir string) {
		watchDir = dir
	}).Desc("verify rule files in a directory when they change"))
	cmds.Define("tokens", cmds.Func(func(path string) {
		tokensPath = path
	}).Desc("print the tokens of a rule file"))
	cmds.Define("repl", cmds.Func(func() {
		repl = true
	}).Desc("starlark repl with the verifier"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	exitCode := 0
	switch {

	case verifyPath != "":
		scope.Call(func(
			verifier *netlogo.Verifier,
		) {
			candidate := load(verifyPath)
			result := verifier.Verify(candidate.Code)
			printResult(candidate.Name, result)
			if !result.Valid {
				exitCode = 1
			}
		})

	case checkPath != "":
		scope.Call(func(
			verifyOne candidates.VerifyOne,
		) {
			verdict := verifyOne(ctx, load(checkPath))
			printVerdict(verdict)
			if !verdict.Passed {
				exitCode = 1
			}
		})

	case batchDir != "":
		scope.Call(func(
			verifyAll candidates.VerifyAll,
		) {
			list, err := candidates.Load(batchDir)
			ce(err)
			verdicts, err := verifyAll(ctx, list)
			ce(err)
			passed := 0
			for _, verdict := range verdicts {
				printVerdict(verdict)
				if verdict.Passed {
					passed++
				}
			}
			fmt.Printf("%d/%d passed\n", passed, len(verdicts))
			if passed < len(verdicts) {
				exitCode = 1
			}
		})

	case watchDir != "":
		scope.Call(func(
			watch candidates.Watch,
		) {
			err := watch(ctx, watchDir, printVerdict)
			if err != nil && ctx.Err() == nil {
				ce(err)
			}
		})

	case tokensPath != "":
		scope.Call(func(
			verifier *netlogo.Verifier,
		) {
			for _, tok := range verifier.Tokenize(load(tokensPath).Code) {
				fmt.Printf("%s\t%s\t%s\n", tok.Pos, tok.Kind, tok.Text)
			}
		})

	case repl:
		scope.Call(func(
			tap debugs.Tap,
			framework *checks.Framework,
		) {
			tap(ctx, "repl", map[string]any{
				"checks": framework.Names(),
			})
		})

	default:
		cmds.GlobalExecutor.PrintUsage()
		exitCode = 2

	}

	os.Exit(exitCode)
}

func load(path string) candidates.Candidate {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		ce(err)
		return candidates.Candidate{
			Name: "stdin",
			Code: string(content),
		}
	}
	candidate, err := candidates.LoadFile(path)
	ce(err)
	return candidate
}

func printResult(name string, result netlogo.Result) {
	if result.Valid {
		fmt.Printf("%s\tvalid\n", name)
		return
	}
	fmt.Printf("%s\t%s\t%s\n", name, result.Category, result.Diagnostic)
}

func printVerdict(verdict candidates.Verdict) {
	printResult(verdict.Candidate.Name, verdict.Result)
	for _, name := range slices.Sorted(maps.Keys(verdict.Checks)) {
		mark := "pass"
		if !verdict.Checks[name] {
			mark = "fail"
		}
		fmt.Printf("\t%s\t%s\n", name, mark)
	}
}

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(-1)
	}
}
