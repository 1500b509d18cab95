// ABOUTME: Tests for cross-reference loading and display-name resolution
// ABOUTME: Covers parallel loading, degraded lookups, and placeholder names
package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarvisforJira/TrailTrack/models"
)

func TestLoadRefsResolvesNames(t *testing.T) {
	crm := newFakeCRM()
	leadID := crm.add("leads", leadRecord("Acme deal", models.StageNew, 0))
	accountID := crm.add("accounts", map[string]any{"name": "Acme Corp"})
	contactID := crm.add("contacts", map[string]any{"first_name": "Ada", "last_name": "Lovelace"})

	refs := LoadRefs(context.Background(), newTestClient(t, crm), true, true, true)

	assert.Equal(t, "Acme deal", refs.LeadTitle(&leadID))
	assert.Equal(t, "Acme Corp", refs.AccountName(&accountID))
	assert.Equal(t, "Ada Lovelace", refs.ContactName(&contactID))
}

func TestLoadRefsSkipsUnrequestedCollections(t *testing.T) {
	crm := newFakeCRM()
	crm.add("leads", leadRecord("Acme deal", models.StageNew, 0))

	refs := LoadRefs(context.Background(), newTestClient(t, crm), true, false, false)
	assert.Len(t, refs.Leads, 1)
	assert.Zero(t, crm.getCount("accounts"))
	assert.Zero(t, crm.getCount("contacts"))
}

func TestLoadRefsAbsorbsFailures(t *testing.T) {
	crm := newFakeCRM()
	crm.add("leads", leadRecord("Acme deal", models.StageNew, 0))
	crm.fail["accounts"] = true

	refs := LoadRefs(context.Background(), newTestClient(t, crm), true, true, false)

	require.Len(t, refs.Leads, 1, "one failed collection must not sink the others")
	assert.Empty(t, refs.Accounts)

	id := 42
	assert.Equal(t, "Independent", refs.AccountName(&id))
}

func TestAccountNameDegradesAfterAccountDelete(t *testing.T) {
	crm := newFakeCRM()
	accountID := crm.add("accounts", map[string]any{"name": "Acme Corp"})
	crm.add("contacts", map[string]any{"first_name": "Ada", "last_name": "Lovelace", "account_id": accountID})

	client := newTestClient(t, crm)
	refs := LoadRefs(context.Background(), client, false, true, false)
	require.Equal(t, "Acme Corp", refs.AccountName(&accountID))

	require.NoError(t, client.Remove(context.Background(), "/accounts", accountID))

	contacts := NewListView(client, Contacts())
	require.NoError(t, contacts.Load(context.Background()))
	refs = LoadRefs(context.Background(), client, false, true, false)

	require.Len(t, contacts.Items(), 1, "the contact outlives its account")
	assert.Equal(t, "Independent", refs.AccountName(contacts.Items()[0].AccountID))
}

func TestRefSetPlaceholders(t *testing.T) {
	refs := RefSet{
		Leads:    map[int]models.Lead{},
		Accounts: map[int]models.Account{},
		Contacts: map[int]models.Contact{},
	}

	assert.Equal(t, "Independent", refs.AccountName(nil))
	assert.Equal(t, "", refs.ContactName(nil))

	id := 7
	assert.Equal(t, "Lead #7", refs.LeadTitle(&id))
	assert.Equal(t, "Contact #7", refs.ContactName(&id))
	assert.Equal(t, "Independent", refs.AccountName(&id), "a dangling account reference reads as unattached")

	assert.Equal(t, "Lead #9", refs.LinkedName(models.TaskLink{Type: models.LinkedLead, ID: 9}))
	assert.Equal(t, "Account #9", refs.LinkedName(models.TaskLink{Type: models.LinkedAccount, ID: 9}))
	assert.Equal(t, "Contact #9", refs.LinkedName(models.TaskLink{Type: models.LinkedContact, ID: 9}))
}

func TestLinkedNameResolves(t *testing.T) {
	refs := RefSet{
		Leads:    map[int]models.Lead{3: {ID: 3, Title: "Acme deal"}},
		Accounts: map[int]models.Account{4: {ID: 4, Name: "Acme Corp"}},
		Contacts: map[int]models.Contact{5: {ID: 5, FirstName: "Ada", LastName: "Lovelace"}},
	}

	assert.Equal(t, "Acme deal", refs.LinkedName(models.TaskLink{Type: models.LinkedLead, ID: 3}))
	assert.Equal(t, "Acme Corp", refs.LinkedName(models.TaskLink{Type: models.LinkedAccount, ID: 4}))
	assert.Equal(t, "Ada Lovelace", refs.LinkedName(models.TaskLink{Type: models.LinkedContact, ID: 5}))
}
