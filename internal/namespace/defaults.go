// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package namespace

// Variable prefixes, one per generated target.
const (
	PrefixSeafile       = "SEAFILE__"
	PrefixCcnet         = "CCNET__"
	PrefixDtableWeb     = "DTABLE_WEB__"
	PrefixDtableServer  = "DTABLE_SERVER__"
	PrefixDtableDB      = "DTABLE_DB__"
	PrefixStorageServer = "DTABLE_STORAGE_SERVER__"
	PrefixDtableEvents  = "DTABLE_EVENTS__"
	PrefixAPIGateway    = "API_GATEWAY__"
)

// Defaults is the immutable built-in default table. It is constructed once
// per run by [NewDefaults]; the zero value is an empty table.
type Defaults struct {
	values map[string]string
}

// NewDefaults builds the default table. A handful of defaults are derived
// from shared environment variables (database host and credentials, time
// zone, public server URL); those are read from e here and never again.
func NewDefaults(e Environment) Defaults {
	dbHost := e.Get("DB_HOST", "")
	dbUser := e.Get("DB_USER", "root")
	dbPassword := e.Get("DB_ROOT_PASSWD", "")
	serverURL := e.Get("SEATABLE_SERVER_PROTOCOL", "") + "://" + e.Get("SEATABLE_SERVER_HOSTNAME", "")

	return Defaults{values: map[string]string{
		"SEAFILE__fileserver__port":             "8082",
		"SEAFILE__database__type":               "mysql",
		"SEAFILE__database__host":               dbHost,
		"SEAFILE__database__port":               "3306",
		"SEAFILE__database__user":               dbUser,
		"SEAFILE__database__password":           dbPassword,
		"SEAFILE__database__db_name":            "seafile_db",
		"SEAFILE__database__connection_charset": "utf8",
		"SEAFILE__history__keep_days":           "60",

		"CCNET__Database__ENGINE":             "mysql",
		"CCNET__Database__HOST":               dbHost,
		"CCNET__Database__PORT":               "3306",
		"CCNET__Database__USER":               dbUser,
		"CCNET__Database__PASSWD":             dbPassword,
		"CCNET__Database__DB":                 "ccnet_db",
		"CCNET__Database__CONNECTION_CHARSET": "utf8",

		"DTABLE_WEB__IS_PRO_VERSION":                      "true",
		"DTABLE_WEB__COMPRESS_CACHE_BACKEND":              "locmem",
		"DTABLE_WEB__DTABLE_SERVER_URL":                   serverURL + "/dtable-server/",
		"DTABLE_WEB__DTABLE_SOCKET_URL":                   serverURL + "/",
		"DTABLE_WEB__DTABLE_WEB_SERVICE_URL":              serverURL + "/",
		"DTABLE_WEB__DTABLE_DB_URL":                       serverURL + "/dtable-db/",
		"DTABLE_WEB__DTABLE_STORAGE_SERVER_URL":           "http://127.0.0.1:6666/",
		"DTABLE_WEB__NEW_DTABLE_IN_STORAGE_SERVER":        "true",
		"DTABLE_WEB__FILE_SERVER_ROOT":                    serverURL + "/seafhttp/",
		"DTABLE_WEB__ENABLE_USER_TO_SET_NUMBER_SEPARATOR": "true",
		"DTABLE_WEB__TIME_ZONE":                           e.Get("TIME_ZONE", "UTC"),
		"DTABLE_WEB__DISABLE_ADDRESSBOOK_V1":              "true",
		"DTABLE_WEB__ENABLE_ADDRESSBOOK_V2":               "true",

		"DTABLE_SERVER__host":           dbHost,
		"DTABLE_SERVER__user":           dbUser,
		"DTABLE_SERVER__password":       dbPassword,
		"DTABLE_SERVER__database":       "dtable_db",
		"DTABLE_SERVER__port":           "3306",
		"DTABLE_SERVER__private_key":    e.Get("DTABLE_WEB__DTABLE_PRIVATE_KEY", ""),
		"DTABLE_SERVER__redis_host":     "redis",
		"DTABLE_SERVER__redis_port":     "6379",
		"DTABLE_SERVER__redis_password": "",

		"DTABLE_DB__general__host":                      "127.0.0.1",
		"DTABLE_DB__general__port":                      "7777",
		"DTABLE_DB__general__log_dir":                   "/opt/seatable/logs",
		"DTABLE_DB__storage__data_dir":                  "/opt/seatable/db-data",
		"DTABLE_DB__dtable0x20cache__dtable_server_url": "http://127.0.0.1:5000",
		"DTABLE_DB__backup__dtable_storage_server_url":  "http://127.0.0.1:6666",
		"DTABLE_DB__backup__keep_backup_num":            "3",

		// Spaces in section names are encoded as 0x20.
		"DTABLE_STORAGE_SERVER__general__log_dir":         "/opt/seatable/logs",
		"DTABLE_STORAGE_SERVER__general__temp_file_dir":   "/tmp/tmp-storage-data",
		"DTABLE_STORAGE_SERVER__storage0x20backend__type": "filesystem",
		"DTABLE_STORAGE_SERVER__storage0x20backend__path": "/opt/seatable/storage-data",
		"DTABLE_STORAGE_SERVER__snapshot__interval":       "86400",
		"DTABLE_STORAGE_SERVER__snapshot__keep_days":      "180",

		"DTABLE_EVENTS__DATABASE__type":     "mysql",
		"DTABLE_EVENTS__DATABASE__host":     dbHost,
		"DTABLE_EVENTS__DATABASE__port":     "3306",
		"DTABLE_EVENTS__DATABASE__username": dbUser,
		"DTABLE_EVENTS__DATABASE__password": dbPassword,
		"DTABLE_EVENTS__DATABASE__db_name":  "dtable_db",
		"DTABLE_EVENTS__REDIS__host":        "redis",
		"DTABLE_EVENTS__REDIS__port":        "6379",

		"API_GATEWAY__general__log_dir":              "/opt/seatable/logs",
		"API_GATEWAY__general__host":                 "127.0.0.1",
		"API_GATEWAY__general__port":                 "7780",
		"API_GATEWAY__dtable-db__cluster_mode":       "false",
		"API_GATEWAY__dtable-db__server_address":     "http://127.0.0.1:7777",
		"API_GATEWAY__dtable-server__cluster_mode":   "false",
		"API_GATEWAY__dtable-server__server_address": "http://127.0.0.1:5000",
	}}
}

// Lookup returns the default for key.
func (d Defaults) Lookup(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// WithPrefix returns a fresh copy of the defaults whose key starts with
// prefix. Mutating the result never affects the table.
func (d Defaults) WithPrefix(prefix string) map[string]string {
	return filterPrefix(d.values, prefix)
}

// Len returns the number of entries in the table.
func (d Defaults) Len() int {
	return len(d.values)
}
