package server

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"lumbungwarga/pkg/types"
)

const maxAvatarBytes = 5 << 20

func (s *Service) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	user, err := s.usersRepo.User(ctx, userID)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.respondError(w, http.StatusNotFound, "Profil tidak ditemukan")
			return
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to fetch profile")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, user)
}

func (s *Service) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	var req types.UpdateProfileRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.Nama != nil && strings.TrimSpace(*req.Nama) == "" {
		s.respondError(w, http.StatusBadRequest, "Nama tidak boleh kosong")
		return
	}

	user, err := s.usersRepo.UpdateProfile(ctx, userID, req)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.respondError(w, http.StatusNotFound, "Profil tidak ditemukan")
			return
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to update profile")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, user)
}

func (s *Service) handleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "Berkas terlalu besar atau tidak valid")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Berkas avatar wajib dilampirkan")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		s.respondError(w, http.StatusBadRequest, "Berkas harus berupa gambar")
		return
	}

	key := fmt.Sprintf("avatars/%s%s", userID, path.Ext(header.Filename))
	avatarURL, err := s.avatars.Upload(ctx, key, file, contentType)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to upload avatar")
		s.internalServerError(w)
		return
	}

	if err := s.usersRepo.SetAvatarURL(ctx, userID, avatarURL); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to persist avatar url")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"avatar_url": avatarURL})
}
