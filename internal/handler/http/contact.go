package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/store"
	"github.com/MKhiriev/contact-keeper/internal/utils"
	"github.com/MKhiriev/contact-keeper/internal/validators"
	"github.com/MKhiriev/contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createContact").Msg("no user ID in request context")
		h.writeError(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// ownership always comes from the verified token, never from the body
	contact.UserID = userID

	savedContact, err := h.services.ContactService.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("error creating contact")
		switch status := statusFromError(err); status {
		case http.StatusBadRequest:
			h.writeError(w, validationMessage(err), status)
		default:
			h.writeError(w, "Failed to create contact", status)
		}
		return
	}

	utils.WriteJSON(w, models.ContactResponse{
		Response: models.Response{Message: "Contact created successfully", Success: true},
		Contact:  savedContact,
	}, http.StatusCreated)
}

func (h *Handler) allContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactService.GetAllContacts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.allContacts").Msg("error fetching contacts")
		h.writeError(w, "Failed to fetch contacts", statusFromError(err))
		return
	}

	if len(contacts) == 0 {
		h.writeError(w, "No contacts found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ContactListResponse{
		Response: models.Response{Message: "All contacts fetched", Success: true},
		Contacts: contacts,
	}, http.StatusOK)
}

func (h *Handler) myContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.myContacts").Msg("no user ID in request context")
		h.writeError(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	contacts, err := h.services.ContactService.GetContactsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.myContacts").Msg("error fetching user contacts")
		h.writeError(w, "Failed to fetch contacts", statusFromError(err))
		return
	}

	if len(contacts) == 0 {
		h.writeError(w, "No contacts found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ContactListResponse{
		Response: models.Response{Message: "Your contacts fetched successfully", Success: true},
		Contacts: contacts,
	}, http.StatusOK)
}

func (h *Handler) contactByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contactID := chi.URLParam(r, "contactID")

	contact, err := h.services.ContactService.GetContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			h.writeError(w, "Contact not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.contactByID").Str("contact_id", contactID).Msg("error fetching contact")
		h.writeError(w, "Failed to fetch contact", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ContactResponse{
		Response: models.Response{Message: "Contact fetched successfully", Success: true},
		Contact:  contact,
	}, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ContactID = chi.URLParam(r, "contactID")

	updatedContact, err := h.services.ContactService.UpdateContact(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Str("contact_id", update.ContactID).Msg("error updating contact")
		switch status := statusFromError(err); status {
		case http.StatusBadRequest:
			h.writeError(w, validationMessage(err), status)
		case http.StatusNotFound:
			h.writeError(w, "Contact not found", status)
		default:
			h.writeError(w, "Failed to update contact", status)
		}
		return
	}

	utils.WriteJSON(w, models.ContactResponse{
		Response: models.Response{Message: "Contact updated successfully", Success: true},
		Contact:  updatedContact,
	}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contactID := chi.URLParam(r, "contactID")

	deletedContact, err := h.services.ContactService.DeleteContact(ctx, contactID)
	if err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			h.writeError(w, "Contact not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteContact").Str("contact_id", contactID).Msg("error deleting contact")
		h.writeError(w, "Failed to delete contact", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ContactResponse{
		Response: models.Response{Message: "Contact deleted successfully", Success: true},
		Contact:  deletedContact,
	}, http.StatusOK)
}

// validationMessage translates a validation failure into the fixed message
// the API exposes. Internal error text never leaves the process.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidPhone):
		return "Invalid phone number"
	case errors.Is(err, validators.ErrInvalidType):
		return "Invalid contact type"
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return "At least one field is required"
	default:
		return "Name, email and phone are required"
	}
}
