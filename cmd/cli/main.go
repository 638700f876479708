package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/lifeboard/lifeboard/infra/initializer"
	"github.com/lifeboard/lifeboard/pkg/config"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
	goalsvc "github.com/lifeboard/lifeboard/pkg/service/goal"
	ledgersvc "github.com/lifeboard/lifeboard/pkg/service/ledger"
	usersvc "github.com/lifeboard/lifeboard/pkg/service/user"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  register <name> <email>          create a user with a zero-balance account")
	fmt.Println("  balance <account_id>             print the account balance")
	fmt.Println("  entries <account_id>             print the account's ledger entries")
	fmt.Println("  fund <goal_id> <amount>          allocate funds into a goal")
	fmt.Println("  withdraw <goal_id> <amount>      move funds back from a goal")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}

	accounts := accountsvc.New(deps.Uow, deps.Logger)
	entries := ledgersvc.New(deps.Uow, accounts, deps.Logger)
	goals := goalsvc.New(deps.Uow, accounts, entries, deps.Logger)
	users := usersvc.New(deps.Uow, accounts, deps.Logger)

	ctx := context.Background()
	switch os.Args[1] {
	case "register":
		if len(os.Args) < 4 {
			fmt.Println("Usage: register <name> <email>")
			return
		}
		password, err := readPassword()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			os.Exit(1)
		}
		u, err := users.Register(ctx, os.Args[2], os.Args[3], password)
		if err != nil {
			color.Red("Failed to register user: %v", err)
			os.Exit(1)
		}
		color.Green("User registered: ID=%s Email=%s", u.ID, u.Email)
	case "balance":
		if len(os.Args) < 3 {
			fmt.Println("Usage: balance <account_id>")
			return
		}
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid account id: %v", err)
			os.Exit(1)
		}
		a, err := accounts.Get(ctx, id)
		if err != nil {
			color.Red("Failed to fetch account: %v", err)
			os.Exit(1)
		}
		color.Green("Account %s balance: %s", a.ID, a.Balance.StringFixed(2))
	case "entries":
		if len(os.Args) < 3 {
			fmt.Println("Usage: entries <account_id>")
			return
		}
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid account id: %v", err)
			os.Exit(1)
		}
		list, err := entries.ListByAccount(ctx, id)
		if err != nil {
			color.Red("Failed to list ledger entries: %v", err)
			os.Exit(1)
		}
		for _, e := range list {
			fmt.Printf("%s  %-10s %10s  %s\n", e.CreatedAt.Format("2006-01-02"), e.Kind, e.Signed().StringFixed(2), e.Description)
		}
	case "fund":
		goalID, amount, ok := goalArgs("fund")
		if !ok {
			return
		}
		g, err := goals.Fund(ctx, goalID, amount)
		if err != nil {
			color.Red("Failed to fund goal: %v", err)
			os.Exit(1)
		}
		color.Green("Goal %q allocated %s of %s (%s)", g.Name, g.AllocatedAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.Status)
	case "withdraw":
		goalID, amount, ok := goalArgs("withdraw")
		if !ok {
			return
		}
		g, err := goals.Withdraw(ctx, goalID, amount)
		if err != nil {
			color.Red("Failed to withdraw from goal: %v", err)
			os.Exit(1)
		}
		color.Green("Goal %q allocated %s of %s (%s)", g.Name, g.AllocatedAmount.StringFixed(2), g.TargetAmount.StringFixed(2), g.Status)
	default:
		fmt.Println("Unknown command:", os.Args[1])
		usage()
	}
}

func goalArgs(cmd string) (uuid.UUID, decimal.Decimal, bool) {
	if len(os.Args) < 4 {
		fmt.Printf("Usage: %s <goal_id> <amount>\n", cmd)
		return uuid.Nil, decimal.Zero, false
	}
	goalID, err := uuid.Parse(os.Args[2])
	if err != nil {
		color.Red("Invalid goal id: %v", err)
		os.Exit(1)
	}
	amount, err := decimal.NewFromString(os.Args[3])
	if err != nil {
		color.Red("Invalid amount: %v", err)
		os.Exit(1)
	}
	return goalID, amount, true
}

// readPassword prompts on stdin. Echo is disabled when stdin is a terminal,
// otherwise the password is read as a plain line (piped input).
func readPassword() (string, error) {
	fmt.Print("Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
