// Package backup serializes snapshots as XML using etree.
package backup

import (
	"time"

	"github.com/beevik/etree"

	appbackup "github.com/davinlab/salonlink-api/internal/application/backup"
)

// XMLExporter implements backup.Exporter. The document is indented and
// self-describing so it can be inspected or re-imported by tooling. Password
// hashes are not part of the snapshot and never appear in the output.
type XMLExporter struct{}

// NewXMLExporter builds the exporter.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// Export serializes the snapshot to an XML document.
func (e *XMLExporter) Export(snap *appbackup.Snapshot) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("salonlink-backup")
	root.CreateAttr("generated_at", snap.GeneratedAt.Format(time.RFC3339))
	root.CreateAttr("version", "1")

	branches := root.CreateElement("branches")
	for _, b := range snap.Branches {
		el := branches.CreateElement("branch")
		el.CreateAttr("id", b.ID)
		el.CreateElement("code").SetText(b.Code)
		el.CreateElement("name").SetText(b.Name)
		el.CreateElement("address").SetText(b.Address)
		el.CreateElement("phone").SetText(b.Phone)
		if b.OwnerID != nil {
			el.CreateElement("owner_id").SetText(*b.OwnerID)
		}
		el.CreateElement("created_at").SetText(b.CreatedAt.Format(time.RFC3339))
	}

	users := root.CreateElement("users")
	for _, u := range snap.Users {
		el := users.CreateElement("user")
		el.CreateAttr("id", u.ID)
		el.CreateElement("email").SetText(u.Email)
		el.CreateElement("name").SetText(u.Name)
		el.CreateElement("phone").SetText(u.Phone)
		el.CreateElement("role").SetText(string(u.Role))
		if u.BranchID != nil {
			el.CreateElement("branch_id").SetText(*u.BranchID)
		}
		el.CreateElement("approved").SetText(boolText(u.Approved))
		el.CreateElement("active").SetText(boolText(u.Active))
		el.CreateElement("created_at").SetText(u.CreatedAt.Format(time.RFC3339))
	}

	customers := root.CreateElement("customers")
	for _, c := range snap.Customers {
		el := customers.CreateElement("customer")
		el.CreateAttr("id", c.ID)
		el.CreateAttr("branch_id", c.BranchID)
		el.CreateElement("name").SetText(c.Name)
		el.CreateElement("phone").SetText(c.Phone)
		el.CreateElement("email").SetText(c.Email)
		el.CreateElement("memo").SetText(c.Memo)
		el.CreateElement("created_at").SetText(c.CreatedAt.Format(time.RFC3339))
	}

	appointments := root.CreateElement("appointments")
	for _, a := range snap.Appointments {
		el := appointments.CreateElement("appointment")
		el.CreateAttr("id", a.ID)
		el.CreateAttr("branch_id", a.BranchID)
		el.CreateElement("customer_id").SetText(a.CustomerID)
		el.CreateElement("staff_id").SetText(a.StaffID)
		el.CreateElement("service").SetText(a.Service)
		el.CreateElement("price").SetText(a.Price.String())
		el.CreateElement("status").SetText(a.Status)
		el.CreateElement("scheduled_at").SetText(a.ScheduledAt.Format(time.RFC3339))
	}

	invitations := root.CreateElement("invitations")
	for _, inv := range snap.Invitations {
		el := invitations.CreateElement("invitation")
		el.CreateAttr("id", inv.ID)
		el.CreateElement("email").SetText(inv.Email)
		el.CreateElement("role").SetText(string(inv.Role))
		el.CreateElement("branch_id").SetText(inv.BranchID)
		el.CreateElement("code").SetText(inv.Code)
		el.CreateElement("invited_by").SetText(inv.InvitedBy)
		el.CreateElement("expires_at").SetText(inv.ExpiresAt.Format(time.RFC3339))
		if inv.UsedAt != nil {
			el.CreateElement("used_at").SetText(inv.UsedAt.Format(time.RFC3339))
		}
		if inv.UsedBy != nil {
			el.CreateElement("used_by").SetText(*inv.UsedBy)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Ensure XMLExporter implements backup.Exporter.
var _ appbackup.Exporter = (*XMLExporter)(nil)
