package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/houseconnect/internal/client/guard"
	"github.com/dmitrijs2005/houseconnect/internal/client/models"
)

var errUnknownCommand = errors.New("unknown command")

// command binds a REPL verb to a guarded route and its view.
type command struct {
	route guard.Route
	usage string
	about string
	nargs int
	view  func(ctx context.Context, args []string) error
}

func (a *App) routes() map[string]command {
	student := []models.Role{models.RoleStudent}
	landlord := []models.Role{models.RoleLandlord}

	return map[string]command{
		"login":    {route: guard.Public("login"), about: "sign in", view: a.noArgs(a.Login)},
		"register": {route: guard.Public("register"), about: "create a student or landlord account", view: a.noArgs(a.Register)},
		"logout":   {route: guard.Public("logout"), about: "sign out", view: a.noArgs(a.Logout)},
		"whoami":   {route: guard.Public("whoami"), about: "show the signed-in user", view: a.noArgs(a.Whoami)},

		"accommodations": {route: guard.Protected("accommodations"), about: "browse all listings", view: a.noArgs(a.Accommodations)},
		"show":           {route: guard.Protected("show"), usage: "show <id>", nargs: 1, about: "show one listing", view: a.withID(a.Show)},

		"dashboard":      {route: guard.Protected("dashboard", student...), about: "your student dashboard", view: a.noArgs(a.Dashboard)},
		"editprofile":    {route: guard.Protected("editprofile", student...), about: "edit your student profile", view: a.noArgs(a.EditStudentProfile)},
		"bookings":       {route: guard.Protected("bookings", student...), about: "your bookings", view: a.noArgs(a.Bookings)},
		"book":           {route: guard.Protected("book", student...), usage: "book <accommodationId>", nargs: 1, about: "book a listing", view: a.withID(a.Book)},
		"apply":          {route: guard.Protected("apply", student...), usage: "apply <accommodationId>", nargs: 1, about: "apply for a listing", view: a.withID(a.Apply)},
		"myapplications": {route: guard.Protected("myapplications", student...), about: "your applications", view: a.noArgs(a.MyApplications)},

		"profile":       {route: guard.Protected("profile", landlord...), about: "your landlord profile", view: a.noArgs(a.LandlordProfile)},
		"mylistings":    {route: guard.Protected("mylistings", landlord...), about: "your listings", view: a.noArgs(a.MyListings)},
		"addlisting":    {route: guard.Protected("addlisting", landlord...), about: "publish a listing", view: a.noArgs(a.AddListing)},
		"editlisting":   {route: guard.Protected("editlisting", landlord...), usage: "editlisting <id>", nargs: 1, about: "edit a listing", view: a.withID(a.EditListing)},
		"deletelisting": {route: guard.Protected("deletelisting", landlord...), usage: "deletelisting <id>", nargs: 1, about: "delete a listing", view: a.withID(a.DeleteListing)},
		"applications":  {route: guard.Protected("applications", landlord...), about: "applications to your listings", view: a.noArgs(a.Applications)},
		"approve":       {route: guard.Protected("approve", landlord...), usage: "approve <id>", nargs: 1, about: "approve an application", view: a.withID(a.Approve)},
		"reject":        {route: guard.Protected("reject", landlord...), usage: "reject <id>", nargs: 1, about: "reject an application", view: a.withID(a.Reject)},
		"assign":        {route: guard.Protected("assign", landlord...), about: "assign a student to a listing", view: a.noArgs(a.Assign)},
	}
}

func (a *App) noArgs(view func(context.Context) error) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error { return view(ctx) }
}

func (a *App) withID(view func(context.Context, int64) error) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("%w: %q is not a valid id", errBadArgument, args[0])
		}
		return view(ctx, id)
	}
}

// Navigate runs the view behind name once the guard allows it. View errors
// are shown to the user here and not returned; only errUnknownCommand and
// context errors come back.
func (a *App) Navigate(ctx context.Context, name string, args []string) error {
	cmd, ok := a.commands[name]
	if !ok {
		return errUnknownCommand
	}
	if len(args) < cmd.nargs {
		a.println("Usage:", cmd.usage)
		return nil
	}

	decision, err := a.guard.Await(ctx, cmd.route)
	if err != nil {
		return err
	}
	a.logger.Debug(ctx, "navigate", "route", cmd.route.Name, "decision", decision)

	switch decision {
	case guard.Allow:
		a.report(ctx, cmd.view(ctx, args))
	case guard.Deny:
		a.println("Please log in to continue.")
		a.report(ctx, a.Login(ctx))
	case guard.Forbidden:
		a.printf("This page is only available to %s.\n", cmd.route.RoleList())
	}
	return nil
}

// Help lists what the current session may run.
func (a *App) Help() string {
	snap := a.session.Snapshot()

	names := make([]string, 0, len(a.commands))
	for name, cmd := range a.commands {
		if guard.Decide(cmd.route, snap) == guard.Allow {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		cmd := a.commands[name]
		label := name
		if cmd.usage != "" {
			label = cmd.usage
		}
		fmt.Fprintf(&b, "  %-26s %s\n", label, cmd.about)
	}
	fmt.Fprintf(&b, "  %-26s %s", "exit | quit", "leave the program")
	return b.String()
}
