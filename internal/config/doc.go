// Package config loads ukase settings from YAML.
//
// A config file has four sections:
//
//	resources:
//	  templates: /srv/ukase/overrides
//	  archive: /srv/ukase/bundle.jar
//	  prefix: /templates
//	  suffix: .hbs
//	uploads:
//	  maxEntries: 0   # 0 = unbounded
//	  ttl: 0s         # 0 = never expire
//	server:
//	  addr: 127.0.0.1:8080
//	  readTimeout: 10s
//	  writeTimeout: 30s
//	log:
//	  level: info
//	  format: text
//
// Unknown keys are rejected. Names without a path separator are searched as
// NAME.yaml and NAME.yml in the current directory, then in the user config
// directory under ukase/.
package config
