package app

import (
	"github.com/vk/sentproc/internal/registry"
	"github.com/vk/sentproc/modules/normalize"
	"github.com/vk/sentproc/modules/replace_emails"
	"github.com/vk/sentproc/modules/replace_numbers"
	"github.com/vk/sentproc/modules/replace_tags"
	"github.com/vk/sentproc/modules/replace_urls"
)

// coreModules is the definitive list of all plugin modules compiled into
// the sentproc binary.
var coreModules = []registry.Module{
	&replace_tags.Module{},
	&replace_urls.Module{},
	&replace_emails.Module{},
	&replace_numbers.Module{},
	&normalize.Module{},
}
