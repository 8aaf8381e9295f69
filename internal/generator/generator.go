// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator runs the fixed-order pipeline that turns the variable
// namespace into the configuration files of a SeaTable deployment.
//
// Targets are generated one after the other. Every target is composed in
// memory and handed to the writer in one piece, so the first failure stops
// the run without leaving a truncated file behind; targets written before
// the failure stay on disk.
package generator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/seatable-init/internal/attrmap"
	"github.com/MKhiriev/seatable-init/internal/emitter"
	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/namespace"
	"github.com/MKhiriev/seatable-init/internal/writer"
)

// File names of the generated targets, relative to the config root.
const (
	FileSeafile         = "seafile.conf"
	FileCcnet           = "ccnet.conf"
	FileDtableWeb       = "dtable_web_settings.py"
	FileGunicorn        = "gunicorn.py"
	FileDtableServer    = "dtable_server_config.json"
	FileDtableDB        = "dtable-db.conf"
	FileStorageServer   = "dtable-storage-server.conf"
	FileDtableEvents    = "dtable-events.conf"
	FileAPIGateway      = "dtable-api-gateway.conf"
	FileNginx           = "nginx.conf"
	FileRoles           = "seatable_roles.json"
	FileSettingsOverlay = "dtable_web_settings_overrides.py"
)

const (
	dtableWebDatabase = "dtable_db"
	dtableWebDBPort   = "3306"
)

// Target is one generated file.
type Target struct {
	// File is the name of the file under the config root.
	File string
	// Enabled is false for targets switched off by the environment.
	Enabled bool

	render func() ([]byte, error)
}

// Generator renders every target from one snapshot of the environment.
type Generator struct {
	env      namespace.Environment
	defaults namespace.Defaults
	writer   *writer.Writer
	logger   *logger.Logger
}

// New returns a Generator for env writing through w. The default table is
// built from env here and not touched again.
func New(env namespace.Environment, w *writer.Writer, log *logger.Logger) *Generator {
	return &Generator{
		env:      env,
		defaults: namespace.NewDefaults(env),
		writer:   w,
		logger:   log,
	}
}

// Targets returns the targets in generation order.
func (g *Generator) Targets() []Target {
	return []Target{
		{File: FileSeafile, Enabled: true, render: g.ini(namespace.PrefixSeafile)},
		{File: FileCcnet, Enabled: true, render: g.ini(namespace.PrefixCcnet)},
		{File: FileDtableWeb, Enabled: true, render: g.settings},
		{File: FileGunicorn, Enabled: true, render: g.gunicorn},
		{File: FileDtableServer, Enabled: true, render: g.json(namespace.PrefixDtableServer)},
		{File: FileDtableDB, Enabled: true, render: g.ini(namespace.PrefixDtableDB)},
		{File: FileStorageServer, Enabled: true, render: g.ini(namespace.PrefixStorageServer)},
		{File: FileDtableEvents, Enabled: true, render: g.ini(namespace.PrefixDtableEvents)},
		{File: FileAPIGateway, Enabled: true, render: g.ini(namespace.PrefixAPIGateway)},
		{File: FileNginx, Enabled: g.env.Bool("ENABLE_NGINX", true), render: g.nginx},
	}
}

// Run checks the required variables, creates the config root and writes
// every enabled target. Nothing is written when a required variable is
// missing.
func (g *Generator) Run(ctx context.Context) error {
	if err := namespace.Require(g.env, namespace.RequiredVariables...); err != nil {
		return err
	}

	if err := g.writer.EnsureRoot(); err != nil {
		return err
	}

	for _, target := range g.Targets() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !target.Enabled {
			g.logger.Info().Str("file", target.File).Msg("skipping disabled target")
			continue
		}

		content, err := target.render()
		if err != nil {
			return fmt.Errorf("generating %s: %w", target.File, err)
		}

		if err = g.writer.Write(target.File, content); err != nil {
			return err
		}
	}

	g.logger.Info().Str("config_dir", g.writer.Root()).Msg("configuration generated")
	return nil
}

func (g *Generator) ini(prefix string) func() ([]byte, error) {
	return func() ([]byte, error) {
		vars, err := namespace.Resolve(g.defaults, g.env, prefix)
		if err != nil {
			return nil, err
		}

		return emitter.INI(vars)
	}
}

func (g *Generator) json(prefix string) func() ([]byte, error) {
	return func() ([]byte, error) {
		vars, err := namespace.Resolve(g.defaults, g.env, prefix)
		if err != nil {
			return nil, err
		}

		return emitter.JSON(vars)
	}
}

func (g *Generator) settings() ([]byte, error) {
	vars, err := namespace.Resolve(g.defaults, g.env, namespace.PrefixDtableWeb)
	if err != nil {
		return nil, err
	}

	roles, err := g.attachment(FileRoles, "loading role definitions")
	if err != nil {
		return nil, err
	}

	overrides, err := g.attachment(FileSettingsOverlay, "loading settings overrides")
	if err != nil {
		return nil, err
	}

	return emitter.Settings(emitter.SettingsInput{
		Variables: vars,
		Database: emitter.Database{
			Host:     g.env.Get("DB_HOST", ""),
			Port:     dtableWebDBPort,
			User:     g.env.Get("DB_USER", "root"),
			Password: g.env.Get("DB_ROOT_PASSWD", ""),
			Name:     dtableWebDatabase,
		},
		OAuthMap:  attrmap.Build(g.env, attrmap.OAuthRoot),
		SAMLMap:   attrmap.Build(g.env, attrmap.SAMLRoot),
		Roles:     roles,
		Overrides: overrides,
	})
}

// attachment reads an optional document from the config root. An absent
// file yields an attachment without content.
func (g *Generator) attachment(name, msg string) (emitter.Attachment, error) {
	content, ok, err := g.writer.ReadOptional(name)
	if err != nil {
		return emitter.Attachment{}, err
	}

	if !ok {
		return emitter.Attachment{Name: name}, nil
	}

	g.logger.Info().Str("file", g.writer.Path(name)).Msg(msg)
	if content == nil {
		content = []byte{}
	}

	return emitter.Attachment{Name: name, Content: content}, nil
}

func (g *Generator) gunicorn() ([]byte, error) {
	return emitter.Gunicorn(g.env.Bool("SEATABLE_LOG_TO_STDOUT", false))
}

func (g *Generator) nginx() ([]byte, error) {
	return emitter.Nginx(g.env.Get("SEATABLE_SERVER_HOSTNAME", ""))
}
