package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationDAO_CRUD(t *testing.T) {
	db := openTestDB(t)
	d := NewApplicationDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Application{
		ApplicantName: "Sara Ahmadi",
		RequestType:   "scholarship",
		Field:         "physics",
		SubmitYear:    "1403",
		SubmitSeason:  "بهار",
		Status:        "pending",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	err = d.Update(ctx, created.ID, Application{
		ApplicantName: "Sara Ahmadi",
		Status:        "accepted",
		Score:         "18.5",
	})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", found.Status)
	assert.Equal(t, "18.5", found.Score)
	assert.Empty(t, found.Field)

	assert.ErrorIs(t, d.Update(ctx, 9999, Application{Status: "accepted"}), ErrApplicationNotFound)

	require.NoError(t, d.Delete(ctx, created.ID))
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrApplicationNotFound)
}

func TestApplicationDAO_DeleteCascadesDocuments(t *testing.T) {
	db := openTestDB(t)
	d := NewApplicationDAO(db)
	ctx := context.Background()

	application, err := d.Insert(ctx, Application{ApplicantName: "Sara"})
	require.NoError(t, err)

	_, err = d.InsertDocument(ctx, ApplicationDocument{
		ApplicationID: application.ID,
		DocumentType:  "transcript",
		FileName:      "transcript.pdf",
		FilePath:      "uploads/789-ghi.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, application.ID))

	documents, err := d.ListDocuments(ctx, application.ID)
	require.NoError(t, err)
	assert.Empty(t, documents)
}

func TestApplicationDAO_Documents(t *testing.T) {
	db := openTestDB(t)
	d := NewApplicationDAO(db)
	ctx := context.Background()

	application, err := d.Insert(ctx, Application{ApplicantName: "Sara"})
	require.NoError(t, err)

	document, err := d.InsertDocument(ctx, ApplicationDocument{
		ApplicationID: application.ID,
		DocumentType:  "recommendation",
		FileName:      "letter.pdf",
		FilePath:      "uploads/321-xyz.pdf",
	})
	require.NoError(t, err)

	found, err := d.FindDocumentByID(ctx, document.ID)
	require.NoError(t, err)
	assert.Equal(t, "letter.pdf", found.FileName)

	require.NoError(t, d.DeleteDocument(ctx, document.ID))
	assert.ErrorIs(t, d.DeleteDocument(ctx, document.ID), ErrApplicationDocumentNotFound)
	_, err = d.FindDocumentByID(ctx, document.ID)
	assert.ErrorIs(t, err, ErrApplicationDocumentNotFound)
}

func TestPaymentDAO_CRUDAndWeakReferences(t *testing.T) {
	db := openTestDB(t)
	d := NewPaymentDAO(db)
	personDAO := NewPersonDAO(db)
	ctx := context.Background()

	person, err := personDAO.Insert(ctx, Person{FirstName: "Sara"})
	require.NoError(t, err)

	created, err := d.Insert(ctx, Payment{
		Title:             "Grant installment",
		PaymentCategory:   "grant",
		RelatedPersonID:   person.ID,
		RelatedPersonName: "Sara Ahmadi",
		Amount:            "1250000.50",
		Status:            "paid",
	})
	require.NoError(t, err)

	// Deleting the person leaves the payment and its snapshot untouched.
	require.NoError(t, personDAO.Delete(ctx, person.ID))

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, person.ID, found.RelatedPersonID)
	assert.Equal(t, "Sara Ahmadi", found.RelatedPersonName)
	assert.Equal(t, "1250000.50", found.Amount)

	err = d.Update(ctx, created.ID, Payment{Title: "Grant installment", Amount: "1250000.50"})
	require.NoError(t, err)

	found, err = d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Status)

	assert.ErrorIs(t, d.Update(ctx, 9999, Payment{Title: "Ghost"}), ErrPaymentNotFound)

	require.NoError(t, d.Delete(ctx, created.ID))
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrPaymentNotFound)
}
