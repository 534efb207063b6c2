package backup_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbackup "github.com/davinlab/salonlink-api/internal/application/backup"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	infrabackup "github.com/davinlab/salonlink-api/internal/infrastructure/backup"
)

func TestExport_StructureAndContent(t *testing.T) {
	branchID := "b1"
	snap := &appbackup.Snapshot{
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Branches: []*entity.Branch{
			{ID: "b1", Code: "GANGNAM-01", Name: "Gangnam", CreatedAt: time.Now()},
		},
		Users: []*entity.User{
			{
				ID: "u1", Email: "owner@salonlink.test", Name: "Owner",
				PasswordHash: "$2a$10$never-export-this",
				Role:         entity.RoleOwner, BranchID: &branchID,
				Approved: true, Active: true, CreatedAt: time.Now(),
			},
		},
		Customers: []*entity.Customer{
			{ID: "c1", BranchID: "b1", Name: "Kim", CreatedAt: time.Now()},
		},
	}

	data, err := infrabackup.NewXMLExporter().Export(snap)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "salonlink-backup", root.Tag)
	assert.NotEmpty(t, root.SelectAttrValue("generated_at", ""))

	users := root.FindElements("//users/user")
	require.Len(t, users, 1)
	assert.Equal(t, "owner@salonlink.test", users[0].SelectElement("email").Text())
	assert.Equal(t, "OWNER", users[0].SelectElement("role").Text())

	assert.NotContains(t, string(data), "never-export-this",
		"password hashes must never appear in an export")

	branches := root.FindElements("//branches/branch")
	require.Len(t, branches, 1)
	assert.Equal(t, "GANGNAM-01", branches[0].SelectElement("code").Text())

	customers := root.FindElements("//customers/customer")
	require.Len(t, customers, 1)
	assert.Equal(t, "b1", customers[0].SelectAttrValue("branch_id", ""))
}
