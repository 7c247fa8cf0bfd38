package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rithwik3425/Blockchain-Secure-Docs/adapters/store"
	"github.com/Rithwik3425/Blockchain-Secure-Docs/core"
)

const (
	ownerAddr    = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	strangerAddr = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func newDocService() *DocumentService {
	return NewDocumentService(store.NewMemoryDocumentStore(), nil)
}

func TestDocumentCreateAndGet(t *testing.T) {
	svc := newDocService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, ownerAddr, "deed", "property deed", "QmTestCid")
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Equal(t, ownerAddr, doc.Owner)
	require.False(t, doc.CreatedAt.IsZero())

	got, err := svc.Get(ctx, ownerAddr, doc.ID)
	require.NoError(t, err)
	require.Equal(t, doc.ID, got.ID)
	require.Equal(t, "QmTestCid", got.CID)
}

func TestDocumentCreateValidation(t *testing.T) {
	svc := newDocService()
	ctx := context.Background()

	_, err := svc.Create(ctx, ownerAddr, "", "", "QmTestCid")
	require.Error(t, err)

	_, err = svc.Create(ctx, ownerAddr, "deed", "", "  ")
	require.Error(t, err)
}

func TestDocumentOwnership(t *testing.T) {
	svc := newDocService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, ownerAddr, "deed", "", "QmTestCid")
	require.NoError(t, err)

	_, err = svc.Get(ctx, strangerAddr, doc.ID)
	require.ErrorIs(t, err, core.ErrNotDocumentOwner)

	_, err = svc.Update(ctx, strangerAddr, doc.ID, "stolen", "")
	require.ErrorIs(t, err, core.ErrNotDocumentOwner)

	err = svc.Delete(ctx, strangerAddr, doc.ID)
	require.ErrorIs(t, err, core.ErrNotDocumentOwner)
}

func TestDocumentUpdate(t *testing.T) {
	svc := newDocService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, ownerAddr, "deed", "old", "QmTestCid")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ownerAddr, doc.ID, "deed v2", "new")
	require.NoError(t, err)
	require.Equal(t, "deed v2", updated.Name)
	require.Equal(t, "new", updated.Description)
	require.Equal(t, "QmTestCid", updated.CID)

	// Empty name keeps the existing one.
	kept, err := svc.Update(ctx, ownerAddr, doc.ID, "", "newer")
	require.NoError(t, err)
	require.Equal(t, "deed v2", kept.Name)
}

func TestDocumentListAndDelete(t *testing.T) {
	svc := newDocService()
	ctx := context.Background()

	a, err := svc.Create(ctx, ownerAddr, "a", "", "QmA")
	require.NoError(t, err)
	_, err = svc.Create(ctx, ownerAddr, "b", "", "QmB")
	require.NoError(t, err)
	_, err = svc.Create(ctx, strangerAddr, "c", "", "QmC")
	require.NoError(t, err)

	docs, err := svc.List(ctx, ownerAddr)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	require.NoError(t, svc.Delete(ctx, ownerAddr, a.ID))

	docs, err = svc.List(ctx, ownerAddr)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = svc.Get(ctx, ownerAddr, a.ID)
	require.ErrorIs(t, err, core.ErrDocumentNotFound)
}

func TestDocumentGetMissing(t *testing.T) {
	svc := newDocService()

	_, err := svc.Get(context.Background(), ownerAddr, "no-such-id")
	require.ErrorIs(t, err, core.ErrDocumentNotFound)
}
