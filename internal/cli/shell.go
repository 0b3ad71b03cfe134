// Package cli is a line-oriented terminal front end for the sync core.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/stpnv0/EventHub/internal/client/coordinator"
	"github.com/stpnv0/EventHub/internal/client/filter"
	"github.com/stpnv0/EventHub/internal/client/remote"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type session interface {
	Login(ctx context.Context, user *domain.User) error
	Logout()
	RefreshAll(ctx context.Context) error
	Create(ctx context.Context, draft domain.EventDraft) error
	Update(ctx context.Context, id string, draft domain.EventDraft) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Register(ctx context.Context, eventID string, form domain.RegistrationForm) error
	Attendees(ctx context.Context, eventID string) ([]*domain.Registration, error)
	Event(id string) (*domain.Event, bool)
	Visible() []*domain.Event
	Stats() domain.CatalogStats
	IsRegistered(eventID string) bool
	SetView(v filter.View) error
	SetCategory(category domain.Category) error
	SetQuery(query string)
	State() coordinator.State
}

type identity interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	SignUp(ctx context.Context, req remote.SignUpRequest) (*domain.User, error)
	Logout()
}

var errQuit = errors.New("quit")

type command struct {
	usage string
	run   func(s *Shell, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":      {"help", (*Shell).help},
		"signup":    {"signup <name> <username> <password> [usn=..] [department=..]", (*Shell).signup},
		"login":     {"login <username> <password>", (*Shell).login},
		"logout":    {"logout", (*Shell).logout},
		"list":      {"list", (*Shell).list},
		"view":      {"view dashboard|my-events", (*Shell).view},
		"category":  {"category All|Academic|Social|Sports|Cultural|Workshop|Career", (*Shell).category},
		"search":    {"search [text]", (*Shell).search},
		"refresh":   {"refresh", (*Shell).refresh},
		"create":    {"create title=.. date=YYYY-MM-DD time=HH:MM location=.. category=.. capacity=N [description=..] [organizer=..] [image=..]", (*Shell).create},
		"update":    {"update <id> field=value...", (*Shell).update},
		"delete":    {"delete <id>", (*Shell).delete},
		"clear-all": {"clear-all", (*Shell).clearAll},
		"register":  {"register <id> email=.. [name=..] [phone=..] [usn=..] [department=..]", (*Shell).register},
		"attendees": {"attendees <id>", (*Shell).attendees},
		"stats":     {"stats", (*Shell).stats},
		"quit":      {"quit", (*Shell).quit},
		"exit":      {"exit", (*Shell).quit},
	}
}

type Shell struct {
	session  session
	identity identity
	in       io.Reader
	out      io.Writer
	logger   logger.Logger

	// noticeSeq is the sequence of the last notice printed.
	noticeSeq uint64
}

func New(session session, identity identity, in io.Reader, out io.Writer, logger logger.Logger) *Shell {
	return &Shell{
		session:  session,
		identity: identity,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run reads commands until EOF, quit or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	fmt.Fprintln(s.out, "EventHub. Type 'help' for commands.")
	for {
		s.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		if err := s.Execute(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		s.printNotice()
	}
}

// Execute runs a single command line.
func (s *Shell) Execute(ctx context.Context, line string) error {
	args, err := tokenize(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", args[0])
	}

	s.logger.Debug("command", logger.String("name", args[0]), logger.Int("args", len(args)-1))
	return cmd.run(s, ctx, args[1:])
}

func (s *Shell) prompt() {
	state := s.session.State()
	if state.User == nil {
		fmt.Fprint(s.out, "eventhub> ")
		return
	}
	fmt.Fprintf(s.out, "%s@eventhub[%s]> ", state.User.Username, state.View)
}

func (s *Shell) printNotice() {
	state := s.session.State()
	if state.Notice != "" && state.NoticeSeq != s.noticeSeq {
		fmt.Fprintf(s.out, "* %s\n", state.Notice)
	}
	s.noticeSeq = state.NoticeSeq
}

func (s *Shell) help(_ context.Context, _ []string) error {
	names := []string{
		"signup", "login", "logout", "list", "view", "category", "search", "refresh",
		"create", "update", "delete", "clear-all", "register", "attendees", "stats", "quit",
	}
	for _, name := range names {
		fmt.Fprintf(s.out, "  %s\n", commands[name].usage)
	}
	return nil
}

func (s *Shell) signup(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usageError("signup")
	}
	extra, err := keyValues(args[3:])
	if err != nil {
		return err
	}

	user, err := s.identity.SignUp(ctx, remote.SignUpRequest{
		Name:       args[0],
		Username:   args[1],
		Password:   args[2],
		USN:        extra["usn"],
		Department: extra["department"],
	})
	if err != nil {
		return err
	}
	return s.startSession(ctx, user)
}

func (s *Shell) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("login")
	}

	user, err := s.identity.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return s.startSession(ctx, user)
}

func (s *Shell) startSession(ctx context.Context, user *domain.User) error {
	// load failures are already reported as a notice
	_ = s.session.Login(ctx, user)
	return s.list(ctx, nil)
}

func (s *Shell) logout(_ context.Context, _ []string) error {
	s.session.Logout()
	s.identity.Logout()
	fmt.Fprintln(s.out, "Signed out.")
	return nil
}

func (s *Shell) list(_ context.Context, _ []string) error {
	if s.session.State().User == nil {
		return domain.ErrNotSignedIn
	}

	events := s.session.Visible()
	if len(events) == 0 {
		fmt.Fprintln(s.out, "No events found.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDATE\tTIME\tLOCATION\tSEATS\t")
	for _, e := range events {
		mark := ""
		if s.session.IsRegistered(e.ID) {
			mark = "registered"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\t%s\n",
			e.ID, e.Title, e.Category, e.Date, e.Time, e.Location, e.Attendees, e.Capacity, mark)
	}
	return w.Flush()
}

func (s *Shell) view(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("view")
	}
	v, err := filter.ParseView(args[0])
	if err != nil {
		return err
	}
	if err := s.session.SetView(v); err != nil {
		return err
	}
	return s.list(ctx, nil)
}

func (s *Shell) category(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("category")
	}
	c, err := domain.ParseCategoryFilter(args[0])
	if err != nil {
		return err
	}
	if err := s.session.SetCategory(c); err != nil {
		return err
	}
	return s.list(ctx, nil)
}

func (s *Shell) search(ctx context.Context, args []string) error {
	s.session.SetQuery(strings.Join(args, " "))
	return s.list(ctx, nil)
}

func (s *Shell) refresh(ctx context.Context, _ []string) error {
	if s.session.State().User == nil {
		return domain.ErrNotSignedIn
	}
	if err := s.session.RefreshAll(ctx); err != nil {
		return nil
	}
	return s.list(ctx, nil)
}

func (s *Shell) create(ctx context.Context, args []string) error {
	fields, err := keyValues(args)
	if err != nil {
		return err
	}
	draft, err := applyDraft(domain.EventDraft{}, fields)
	if err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := s.session.Create(ctx, draft); err != nil {
		return nil
	}
	return s.list(ctx, nil)
}

func (s *Shell) update(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("update")
	}
	existing, ok := s.session.Event(args[0])
	if !ok {
		return domain.ErrEventNotFound
	}

	fields, err := keyValues(args[1:])
	if err != nil {
		return err
	}
	draft, err := applyDraft(existing.Draft(), fields)
	if err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := s.session.Update(ctx, args[0], draft); err != nil {
		return nil
	}
	return s.list(ctx, nil)
}

func (s *Shell) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("delete")
	}
	if err := s.session.Delete(ctx, args[0]); err != nil {
		return nil
	}
	return s.list(ctx, nil)
}

func (s *Shell) clearAll(ctx context.Context, _ []string) error {
	if err := s.session.DeleteAll(ctx); err != nil {
		return nil
	}
	return s.list(ctx, nil)
}

func (s *Shell) register(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usageError("register")
	}
	fields, err := keyValues(args[1:])
	if err != nil {
		return err
	}
	form, err := registrationForm(s.session.State().User, fields)
	if err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	// refusals and failures surface as a notice
	_ = s.session.Register(ctx, args[0], form)
	return nil
}

func (s *Shell) attendees(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("attendees")
	}
	regs, err := s.session.Attendees(ctx, args[0])
	if err != nil {
		return nil
	}
	if len(regs) == 0 {
		fmt.Fprintln(s.out, "No attendees yet.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tUSN\tDEPARTMENT\tREGISTERED\t")
	for _, r := range regs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Form.FullName, r.Form.Email, r.Form.Phone, r.Form.USN, r.Form.Department,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (s *Shell) stats(_ context.Context, _ []string) error {
	if s.session.State().User == nil {
		return domain.ErrNotSignedIn
	}
	st := s.session.Stats()
	fmt.Fprintf(s.out, "Total events: %d\nTotal attendees: %d\nAverage attendance: %d\n",
		st.TotalEvents, st.TotalAttendees, st.AvgAttendance)
	return nil
}

func (s *Shell) quit(_ context.Context, _ []string) error {
	return errQuit
}

func usageError(name string) error {
	return fmt.Errorf("usage: %s", commands[name].usage)
}
