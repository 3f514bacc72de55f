// Package resolver implements the fuzzy drill-down workflows of gns3util.
//
// A drill-down fetches a whole collection (users or groups), offers the
// identifier of every item to a Selector, prints each picked item as a
// key/value block and, when asked, fetches and prints the item's related
// collection: a user's groups or a group's members.
//
// The workflow is written once and parameterized by Kind. Each kind carries a
// capability record naming its identifier field, its fetchers and its error
// messages; adding a kind without a capability record does not compile.
//
// FAILURES:
// Unlike the generic get commands, every failed fetch here is fatal and comes
// back as an error carrying a fixed, kind-specific message. An empty related
// collection is fatal too, so "no members" is told apart from a lookup that
// failed.
package resolver

import (
	"errors"
	"fmt"
	"io"

	"github.com/concave-dev/gns3util/cmd/gns3util/client"
	"github.com/concave-dev/gns3util/cmd/gns3util/display"
	"github.com/concave-dev/gns3util/cmd/gns3util/selector"
	"github.com/concave-dev/gns3util/internal/logging"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Directory is the part of the API a drill-down reads.
type Directory interface {
	Users() client.Result
	Groups() client.Result
	UsersGroups(userID string) client.Result
	GroupMembers(groupID string) client.Result
}

// Kind is the category of entity a drill-down targets.
type Kind int

const (
	KindUser Kind = iota
	KindGroup

	kindCount
)

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return capabilities[k].name
}

// capability describes how one Kind is fetched, identified and expanded.
type capability struct {
	name            string
	identifierField string // Field matched by the selector
	relationKey     string // Field passed to the relation fetcher

	collection func(Directory) client.Result
	relation   func(Directory, string) client.Result

	collectionError    string
	relationError      string
	emptyRelationError string
}

var capabilities = [...]capability{
	KindUser: {
		name:               "user",
		identifierField:    "username",
		relationKey:        "user_id",
		collection:         Directory.Users,
		relation:           Directory.UsersGroups,
		collectionError:    "An error occurred getting all the data for users",
		relationError:      "An error occurred getting groups for the user",
		emptyRelationError: "this user is in no groups",
	},
	KindGroup: {
		name:               "group",
		identifierField:    "name",
		relationKey:        "user_group_id",
		collection:         Directory.Groups,
		relation:           Directory.GroupMembers,
		collectionError:    "An error occurred getting all the data for groups",
		relationError:      "An error occurred getting members for the group",
		emptyRelationError: "this group has no members",
	},
}

// Every Kind below kindCount needs a capability record
var _ = [1]struct{}{}[int(kindCount)-len(capabilities)]

// Resolver runs drill-downs against a Directory, asking Selector for the
// user's picks and printing to Out.
type Resolver struct {
	Directory Directory
	Selector  selector.Selector
	Out       io.Writer
}

// Resolve runs the drill-down for kind. With showMembers every picked item is
// followed by the blocks of its related collection.
func (r *Resolver) Resolve(kind Kind, showMembers bool) error {
	if kind < 0 || kind >= kindCount {
		return fmt.Errorf("unsupported entity kind %v", kind)
	}
	capab := capabilities[kind]

	result := capab.collection(r.Directory)
	if !result.OK {
		return errors.New(capab.collectionError)
	}
	items := parseItems(result.Raw())
	logging.Debug("Fetched %d %ss", len(items), capab.name)

	candidates := lo.FilterMap(items, func(it item, _ int) (string, bool) {
		return it.value(capab.identifierField)
	})

	picked, err := r.Selector.Select(candidates)
	if err != nil {
		return fmt.Errorf("failed to select %s: %w", capab.name, err)
	}
	if len(picked) == 0 {
		logging.Debug("No %s selected", capab.name)
		return nil
	}
	selected := mapset.NewThreadUnsafeSet(picked...)

	printer := display.NewBlockPrinter(r.Out)
	for _, it := range items {
		id, ok := it.value(capab.identifierField)
		if !ok || !selected.Contains(id) {
			continue
		}

		if err := printer.Print(it.fields); err != nil {
			return err
		}
		if !showMembers {
			continue
		}

		if err := r.printRelated(printer, capab, it); err != nil {
			return err
		}
	}

	return nil
}

// printRelated fetches and prints the related collection of one item.
func (r *Resolver) printRelated(printer *display.BlockPrinter, capab capability, it item) error {
	key, ok := it.value(capab.relationKey)
	if !ok {
		logging.Error("%s has no %s field", capab.name, capab.relationKey)
		return errors.New(capab.relationError)
	}

	result := capab.relation(r.Directory, key)
	if !result.OK {
		return errors.New(capab.relationError)
	}

	related := parseItems(result.Raw())
	if len(related) == 0 {
		return errors.New(capab.emptyRelationError)
	}

	for _, rel := range related {
		if err := printer.Print(rel.fields); err != nil {
			return err
		}
	}
	return nil
}

// UsernamesAndIDs lists every user's name and id. A failed fetch aborts
// before anything is printed.
func (r *Resolver) UsernamesAndIDs() error {
	result := r.Directory.Users()
	if !result.OK {
		return errors.New("An error occurred getting all the data for the users")
	}

	if _, err := fmt.Fprintln(r.Out, "List of all users and their id:"); err != nil {
		return err
	}
	for _, user := range parseItems(result.Raw()) {
		_, err := fmt.Fprintf(r.Out, "Username: %s\nID: %s\n----------\n",
			user.valueOr("username", "N/A"), user.valueOr("user_id", "N/A"))
		if err != nil {
			return err
		}
	}
	return nil
}
