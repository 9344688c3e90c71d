// Package content declares the records the site reads from Strapi. Field
// names follow the CMS JSON so responses decode without mapping tables.
package content
